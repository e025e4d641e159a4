package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// Upsert inserts or replaces the record keyed on
	// (employee_id, month, year) in a single statement.
	Upsert(ctx context.Context, p Payroll) (Payroll, error)

	// GetByID returns the record with employee fields joined in.
	GetByID(ctx context.Context, id string) (Payroll, error)

	// ListByPeriod returns all records for (year, month) with employee
	// fields joined in.
	ListByPeriod(ctx context.Context, year, month int) ([]Payroll, error)

	// ListByEmployee returns the employee's payslip history, newest
	// period first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)

	GetSummary(ctx context.Context, year, month int) (Summary, error)
	GetChart(ctx context.Context, year int) ([]ChartPoint, error)
}
