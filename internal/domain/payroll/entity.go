package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one computed salary record, unique per (employee, month, year).
// Generation is an atomic upsert on that natural key, so recomputing a
// period always reflects the latest attendance.
type Payroll struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int

	BasicSalary decimal.Decimal
	WorkingDays int
	PresentDays int
	AbsentDays  int
	LOPDays     int

	// Overtime has no data source; both fields stay zero.
	OvertimeHours decimal.Decimal
	OvertimePay   decimal.Decimal

	GrossSalary decimal.Decimal
	NetSalary   decimal.Decimal

	GeneratedOn time.Time

	// Joined fields
	EmployeeName       *string
	EmployeeCode       *string
	EmployeeEmail      *string
	EmployeeDepartment *string
	EmployeeRole       *string
	EmployeeDateJoined *time.Time
}

// Summary aggregates one period's records for the dashboard.
type Summary struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Count      int64           `json:"salary_generated_for"`
	TotalGross decimal.Decimal `json:"total_gross_salary"`
	TotalNet   decimal.Decimal `json:"total_net_salary"`
}

// ChartPoint is one month's totals in the yearly gross-vs-net chart.
type ChartPoint struct {
	Month      int             `json:"month"`
	TotalGross decimal.Decimal `json:"total_gross_salary"`
	TotalNet   decimal.Decimal `json:"total_net_salary"`
}
