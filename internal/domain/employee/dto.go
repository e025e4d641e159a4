package employee

import (
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmpCode    string          `json:"emp_code"`
	Name       string          `json:"name"`
	Status     *string         `json:"status,omitempty"`
	Email      string          `json:"email"`
	Department string          `json:"department"`
	Role       string          `json:"role"`
	Salary     decimal.Decimal `json:"salary"`
	DateJoined string          `json:"date_joined"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_code",
			Message: "emp_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmpCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_code",
			Message: "emp_code must be 1-20 characters without whitespace",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if _, ok := validator.IsValidDate(r.DateJoined); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_joined",
			Message: "date_joined must be a YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest is a partial update; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name,omitempty"`
	Status     *string          `json:"status,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Department *string          `json:"department,omitempty"`
	Role       *string          `json:"role,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	DateJoined *string          `json:"date_joined,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if r.DateJoined != nil {
		if _, ok := validator.IsValidDate(*r.DateJoined); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_joined",
				Message: "date_joined must be a YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	EmpCode    string          `json:"emp_code"`
	Name       string          `json:"name"`
	Status     string          `json:"status"`
	Email      string          `json:"email"`
	Department string          `json:"department"`
	Role       string          `json:"role"`
	Salary     decimal.Decimal `json:"salary"`
	DateJoined string          `json:"date_joined"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		EmpCode:    e.EmpCode,
		Name:       e.Name,
		Status:     string(e.Status),
		Email:      e.Email,
		Department: e.Department,
		Role:       e.Role,
		Salary:     e.Salary,
		DateJoined: e.DateJoined.Format("2006-01-02"),
	}
}
