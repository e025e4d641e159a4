package attendance

import (
	"context"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/config"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/attendance"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	lateCutoff      config.Clock
	heatmapLateHour int
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	lateCutoff config.Clock,
	heatmapLateHour int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		lateCutoff:           lateCutoff,
		heatmapLateHour:      heatmapLateHour,
	}
}

// CheckIn implements attendance.AttendanceService. Every call creates a
// fresh record; an earlier open record for the same day stays open.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		CheckIn:    &now,
		Date:       today,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. The employee is
// resolved first so an unknown employee is reported as not found rather
// than as a missing check-in.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.AttendanceRepository.GetOpenRecord(ctx, emp.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	closed, err := s.AttendanceRepository.SetCheckOut(ctx, open.ID, time.Now().UTC())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(closed), nil
}

// GetDailySummary implements attendance.AttendanceService. Absent is the
// headcount minus distinct employees seen that day, so it also counts
// employees hired after the date in question.
func (s *AttendanceServiceImpl) GetDailySummary(ctx context.Context, date time.Time) (attendance.DailySummary, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	total, err := s.EmployeeRepository.Count(ctx)
	if err != nil {
		return attendance.DailySummary{}, err
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return attendance.DailySummary{}, err
	}

	present, late := summarizeDay(records, s.lateCutoff)

	return attendance.DailySummary{
		Date:           day.Format("2006-01-02"),
		TotalEmployees: total,
		Present:        present,
		Absent:         total - int64(present),
		Late:           late,
	}, nil
}

// GetMonthlySummary implements attendance.AttendanceService. The summary is
// company-wide: a date counts as present when any employee has a record on
// it, and hours are summed across all closed records of the period.
func (s *AttendanceServiceImpl) GetMonthlySummary(ctx context.Context, year int, month time.Month) (attendance.MonthlySummary, error) {
	records, err := s.AttendanceRepository.ListByPeriod(ctx, year, month)
	if err != nil {
		return attendance.MonthlySummary{}, err
	}

	return attendance.MonthlySummary{
		Year:        year,
		Month:       int(month),
		PresentDays: countDistinctDates(records),
		TotalHours:  sumWorkedHours(records),
	}, nil
}

// GetHeatmap implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHeatmap(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.HeatmapDay, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByEmployeePeriod(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	return buildHeatmap(records, year, month, s.heatmapLateHour), nil
}

// GetRecentFeed implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetRecentFeed(ctx context.Context, limit int) ([]attendance.FeedEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	records, err := s.AttendanceRepository.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	feed := make([]attendance.FeedEntry, 0, len(records))
	for _, rec := range records {
		name := rec.EmployeeID
		if rec.EmployeeName != nil {
			name = *rec.EmployeeName
		}

		resp := attendance.ToResponse(rec)
		feed = append(feed, attendance.FeedEntry{
			Employee: name,
			CheckIn:  resp.CheckIn,
			CheckOut: resp.CheckOut,
		})
	}

	return feed, nil
}
