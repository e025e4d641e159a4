package leave

import "context"

// LeaveRepository defines data access methods for leave applications.
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)

	// List returns all leaves, newest application first.
	List(ctx context.Context) ([]Leave, error)

	// SetStatus overwrites the status unconditionally.
	SetStatus(ctx context.Context, id string, status LeaveStatus) error

	CountByType(ctx context.Context) ([]TypeCount, error)
	CountByStartMonth(ctx context.Context) ([]MonthCount, error)
}
