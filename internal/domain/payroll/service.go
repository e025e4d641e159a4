package payroll

import "context"

// PayrollService defines business logic for salary generation and payslips.
type PayrollService interface {
	// GenerateForEmployee computes and upserts one employee's payroll for
	// a period from the attendance data on record.
	GenerateForEmployee(ctx context.Context, req GenerateRequest) (PayrollResponse, error)

	// GenerateForAll runs GenerateForEmployee over every employee and
	// returns how many records were written. It stops at the first
	// failing employee.
	GenerateForAll(ctx context.Context, req GenerateAllRequest) (int, error)

	// GenerateForPreviousMonth is the scheduled entry point; it targets
	// the month before the current one.
	GenerateForPreviousMonth(ctx context.Context) (int, error)

	ListByPeriod(ctx context.Context, year, month int) ([]PayrollResponse, error)

	// GetEmployeeHistory returns one employee's payslip history, newest
	// period first.
	GetEmployeeHistory(ctx context.Context, employeeID string) ([]PayrollResponse, error)

	GetSummary(ctx context.Context, year, month int) (Summary, error)
	GetChart(ctx context.Context, year int) ([]ChartPoint, error)

	// GetPayslipPDF renders one record as a PDF payslip and returns the
	// document with a suggested filename.
	GetPayslipPDF(ctx context.Context, payrollID string) ([]byte, string, error)

	// GetPeriodPDF renders all of a period's records as one summary PDF.
	GetPeriodPDF(ctx context.Context, year, month int) ([]byte, string, error)

	// EmailPayslip renders the payslip and mails it to the employee's
	// address on file.
	EmailPayslip(ctx context.Context, payrollID string) error
}
