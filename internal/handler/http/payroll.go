package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/payroll"
	"github.com/cloudhrms/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GenerateAll(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	GetEmployeeHistory(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetChart(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
	DownloadPeriod(w http.ResponseWriter, r *http.Request)
	EmailPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	generated, err := h.payrollService.GenerateForEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", generated)
}

// GenerateAll implements PayrollHandler
func (h *payrollHandlerImpl) GenerateAll(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	count, err := h.payrollService.GenerateForAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll generated for all employees", map[string]int{
		"generated": count,
	})
}

// ListByPeriod implements PayrollHandler
func (h *payrollHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	records, err := h.payrollService.ListByPeriod(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetEmployeeHistory implements PayrollHandler
func (h *payrollHandlerImpl) GetEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	records, err := h.payrollService.GetEmployeeHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetSummary implements PayrollHandler
func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	summary, err := h.payrollService.GetSummary(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GetChart implements PayrollHandler
func (h *payrollHandlerImpl) GetChart(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	chart, err := h.payrollService.GetChart(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, chart)
}

// DownloadPayslip implements PayrollHandler
func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	document, filename, err := h.payrollService.GetPayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, document)
}

// DownloadPeriod implements PayrollHandler
func (h *payrollHandlerImpl) DownloadPeriod(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	document, filename, err := h.payrollService.GetPeriodPDF(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, document)
}

// EmailPayslip implements PayrollHandler
func (h *payrollHandlerImpl) EmailPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.EmailPayslip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip emailed", nil)
}
