package leave

import (
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeCode string `json:"employee"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
}

// Validate checks field presence and formats only. Deliberately no
// start<=end check and no overlap detection against existing leaves.
func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee code is required",
		})
	}

	if !validator.IsInSlice(r.LeaveType, []string{
		string(LeaveTypeCasual),
		string(LeaveTypeSick),
		string(LeaveTypeEarned),
		string(LeaveTypeUnpaid),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of CASUAL, SICK, EARNED, UNPAID",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a YYYY-MM-DD date",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a YYYY-MM-DD date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AppliedOn    string  `json:"applied_on"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		EmployeeCode: l.EmployeeCode,
		LeaveType:    string(l.LeaveType),
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Reason:       l.Reason,
		Status:       string(l.Status),
		AppliedOn:    l.AppliedOn.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
