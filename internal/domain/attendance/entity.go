package attendance

import (
	"time"
)

// Attendance is one check-in event. The model allows several records per
// employee per day; check-out resolves against the most recently created
// open record.
type Attendance struct {
	ID         string
	EmployeeID string
	CheckIn    *time.Time
	CheckOut   *time.Time

	// Date is fixed at creation time, not re-derived from CheckIn.
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// TotalHours returns the worked duration in hours, zero while the record
// is still open.
func (a Attendance) TotalHours() float64 {
	if a.CheckIn == nil || a.CheckOut == nil {
		return 0
	}
	return a.CheckOut.Sub(*a.CheckIn).Hours()
}

// DayStatus classifies one calendar day in the monthly heatmap.
type DayStatus string

const (
	DayStatusPresent DayStatus = "PRESENT"
	DayStatusAbsent  DayStatus = "ABSENT"
	DayStatusLate    DayStatus = "LATE"
)
