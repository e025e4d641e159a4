package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, empCode string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, emp Employee) error

	// Delete removes the employee; attendance, leave and payroll rows
	// cascade at the database level.
	Delete(ctx context.Context, id string) error
}
