package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn opens a new attendance record stamped with the current time.
	// Repeated check-ins on the same day create additional records.
	CheckIn(ctx context.Context, req CheckRequest) (AttendanceResponse, error)

	// CheckOut closes the employee's most recently created open record.
	CheckOut(ctx context.Context, req CheckRequest) (AttendanceResponse, error)

	// GetDailySummary reports, for one date, distinct present employees,
	// the headcount remainder as absent, and the count of records checked
	// in after the late cutoff.
	GetDailySummary(ctx context.Context, date time.Time) (DailySummary, error)

	// GetMonthlySummary reports the company-wide count of dates with any
	// attendance and the total worked hours for a period.
	GetMonthlySummary(ctx context.Context, year int, month time.Month) (MonthlySummary, error)

	// GetHeatmap classifies every calendar day of the period as
	// PRESENT, ABSENT or LATE for one employee.
	GetHeatmap(ctx context.Context, employeeID string, year int, month time.Month) ([]HeatmapDay, error)

	// GetRecentFeed returns the latest check-in events across all
	// employees, newest first.
	GetRecentFeed(ctx context.Context, limit int) ([]FeedEntry, error)
}
