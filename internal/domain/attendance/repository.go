package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetOpenRecord returns the most recently created record for the
	// employee whose check-out is still null.
	GetOpenRecord(ctx context.Context, employeeID string) (Attendance, error)

	// SetCheckOut stamps the check-out time on an existing record.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) (Attendance, error)

	// ListByDate returns all records dated exactly date.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByPeriod returns all records in the half-open interval
	// [first of month, first of next month).
	ListByPeriod(ctx context.Context, year int, month time.Month) ([]Attendance, error)

	// ListByEmployeePeriod is ListByPeriod restricted to one employee.
	ListByEmployeePeriod(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	// CountDistinctDates counts the distinct calendar dates with at least
	// one record for the employee in the period.
	CountDistinctDates(ctx context.Context, employeeID string, year int, month time.Month) (int, error)

	// ListRecent returns the latest records ordered by check-in descending,
	// with employee names joined in.
	ListRecent(ctx context.Context, limit int) ([]Attendance, error)
}
