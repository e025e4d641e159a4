package payroll

import (
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a valid payroll year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GenerateAllRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GenerateAllRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a valid payroll year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  *string         `json:"employee_name,omitempty"`
	EmployeeCode  *string         `json:"employee_code,omitempty"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	WorkingDays   int             `json:"working_days"`
	PresentDays   int             `json:"present_days"`
	AbsentDays    int             `json:"absent_days"`
	LOPDays       int             `json:"lop_days"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	GrossSalary   decimal.Decimal `json:"gross_salary"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	GeneratedOn   string          `json:"generated_on"`
}

func ToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		EmployeeCode:  p.EmployeeCode,
		Month:         p.Month,
		Year:          p.Year,
		BasicSalary:   p.BasicSalary,
		WorkingDays:   p.WorkingDays,
		PresentDays:   p.PresentDays,
		AbsentDays:    p.AbsentDays,
		LOPDays:       p.LOPDays,
		OvertimeHours: p.OvertimeHours,
		OvertimePay:   p.OvertimePay,
		GrossSalary:   p.GrossSalary,
		NetSalary:     p.NetSalary,
		GeneratedOn:   p.GeneratedOn.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
