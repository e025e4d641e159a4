package attendance

import (
	"math"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/config"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/attendance"
)

// isAfterCutoff reports whether t's time of day is strictly after the
// cutoff. Exactly on the cutoff is not late.
func isAfterCutoff(t time.Time, cutoff config.Clock) bool {
	if t.Hour() != cutoff.Hour {
		return t.Hour() > cutoff.Hour
	}
	if t.Minute() != cutoff.Minute {
		return t.Minute() > cutoff.Minute
	}
	return t.Second() > 0 || t.Nanosecond() > 0
}

// summarizeDay folds one date's records into present/late counts. Present
// counts distinct employees; late counts records, so an employee who
// checks in again after the cutoff is late even if they arrived on time.
func summarizeDay(records []attendance.Attendance, cutoff config.Clock) (present, late int) {
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.CheckIn == nil {
			continue
		}
		seen[rec.EmployeeID] = struct{}{}
		if isAfterCutoff(*rec.CheckIn, cutoff) {
			late++
		}
	}

	return len(seen), late
}

// buildHeatmap classifies every calendar day of (year, month). Days without
// a record are ABSENT. A day is LATE only while a record with a check-in at
// or after lateHour is still open; once checked out the day is PRESENT.
func buildHeatmap(records []attendance.Attendance, year int, month time.Month, lateHour int) []attendance.HeatmapDay {
	type dayState struct {
		present bool
		late    bool
	}

	byDay := make(map[int]dayState)
	for _, rec := range records {
		state := byDay[rec.Date.Day()]
		state.present = true
		if rec.CheckOut == nil && rec.CheckIn != nil && rec.CheckIn.Hour() >= lateHour {
			state.late = true
		}
		byDay[rec.Date.Day()] = state
	}

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	heatmap := make([]attendance.HeatmapDay, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		status := attendance.DayStatusAbsent
		if state, ok := byDay[day]; ok {
			status = attendance.DayStatusPresent
			if state.late {
				status = attendance.DayStatusLate
			}
		}

		heatmap = append(heatmap, attendance.HeatmapDay{
			Date:   date.Format("2006-01-02"),
			Status: status,
		})
	}

	return heatmap
}

// countDistinctDates counts the calendar dates covered by the records,
// regardless of which employee produced them.
func countDistinctDates(records []attendance.Attendance) int {
	dates := make(map[string]struct{})
	for _, rec := range records {
		dates[rec.Date.Format("2006-01-02")] = struct{}{}
	}
	return len(dates)
}

// sumWorkedHours adds up the closed records' durations rounded to two
// decimals; open records contribute nothing.
func sumWorkedHours(records []attendance.Attendance) float64 {
	var total float64
	for _, rec := range records {
		total += rec.TotalHours()
	}
	return math.Round(total*100) / 100
}
