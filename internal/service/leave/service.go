package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/employee"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/leave"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/database"
	"github.com/cloudhrms/hrms-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                 db,
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
	}
}

// ApplyLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
		AppliedOn:  time.Now().UTC(),
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created.EmployeeName = &emp.Name
	created.EmployeeCode = &emp.EmpCode

	return leave.ToResponse(created), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}

	return responses, nil
}

// ApproveLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.LeaveStatusApproved)
}

// RejectLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.LeaveStatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id string, status leave.LeaveStatus) (leave.LeaveResponse, error) {
	var decided leave.Leave

	// Status write and joined re-read happen in one transaction so the
	// response always reflects the decision just made.
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.LeaveRepository.SetStatus(ctx, id, status); err != nil {
			return err
		}

		var err error
		decided, err = s.LeaveRepository.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(decided), nil
}

// GetTypeDistribution implements leave.LeaveService.
func (s *LeaveServiceImpl) GetTypeDistribution(ctx context.Context) ([]leave.TypeCount, error) {
	return s.LeaveRepository.CountByType(ctx)
}

// GetMonthlyTrend implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMonthlyTrend(ctx context.Context) ([]leave.MonthCount, error) {
	return s.LeaveRepository.CountByStartMonth(ctx)
}
