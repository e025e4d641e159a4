package leave

import "context"

// LeaveService defines business logic for the leave workflow.
type LeaveService interface {
	// ApplyLeave files a new application in PENDING status. The employee
	// is addressed by emp_code, not ID.
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	ListLeaves(ctx context.Context) ([]LeaveResponse, error)

	// ApproveLeave sets the status to APPROVED regardless of the current
	// status.
	ApproveLeave(ctx context.Context, id string) (LeaveResponse, error)

	// RejectLeave sets the status to REJECTED regardless of the current
	// status.
	RejectLeave(ctx context.Context, id string) (LeaveResponse, error)

	// GetTypeDistribution counts applications per leave type.
	GetTypeDistribution(ctx context.Context) ([]TypeCount, error)

	// GetMonthlyTrend counts applications per start-date calendar month.
	GetMonthlyTrend(ctx context.Context) ([]MonthCount, error)
}
