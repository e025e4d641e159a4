package http

import (
	"encoding/json"
	"net/http"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/leave"
	"github.com/cloudhrms/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ApplyLeave(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
	GetTypeDistribution(w http.ResponseWriter, r *http.Request)
	GetMonthlyTrend(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// ApplyLeave implements LeaveHandler
func (h *leaveHandlerImpl) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	applied, err := h.leaveService.ApplyLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave applied", applied)
}

// ListLeaves implements LeaveHandler
func (h *leaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ApproveLeave implements LeaveHandler
func (h *leaveHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	decided, err := h.leaveService.ApproveLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave approved", decided)
}

// RejectLeave implements LeaveHandler
func (h *leaveHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	decided, err := h.leaveService.RejectLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave rejected", decided)
}

// GetTypeDistribution implements LeaveHandler
func (h *leaveHandlerImpl) GetTypeDistribution(w http.ResponseWriter, r *http.Request) {
	counts, err := h.leaveService.GetTypeDistribution(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}

// GetMonthlyTrend implements LeaveHandler
func (h *leaveHandlerImpl) GetMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	counts, err := h.leaveService.GetMonthlyTrend(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}
