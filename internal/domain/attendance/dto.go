package attendance

import (
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/pkg/validator"
)

type CheckRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      formatTimePtr(a.CheckIn),
		CheckOut:     formatTimePtr(a.CheckOut),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

type DailySummary struct {
	Date           string `json:"date"`
	TotalEmployees int64  `json:"total_employees"`
	Present        int    `json:"present"`
	Absent         int64  `json:"absent"`
	Late           int    `json:"late"`
}

type MonthlySummary struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	PresentDays int     `json:"present_days"`
	TotalHours  float64 `json:"total_hours"`
}

type HeatmapDay struct {
	Date   string    `json:"date"`
	Status DayStatus `json:"status"`
}

type FeedEntry struct {
	Employee string  `json:"employee"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}
