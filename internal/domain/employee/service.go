package employee

import "context"

// EmployeeService defines business logic for employee records.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee applies a partial update; nil request fields keep
	// their stored values.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee and, through database cascades,
	// all attendance, leave and payroll rows referencing it.
	DeleteEmployee(ctx context.Context, id string) error
}
