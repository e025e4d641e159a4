package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/config"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/attendance"
	"github.com/cloudhrms/hrms-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- in-memory stubs ---

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	open    map[string]attendance.Attendance
	records []attendance.Attendance
}

func (s *stubAttendanceRepo) GetOpenRecord(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	rec, ok := s.open[employeeID]
	if !ok {
		return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
	}
	return rec, nil
}

func (s *stubAttendanceRepo) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	for _, rec := range s.open {
		if rec.ID == id {
			rec.CheckOut = &checkOut
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (s *stubAttendanceRepo) ListByPeriod(ctx context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	return s.records, nil
}

func newTestService(employees []employee.Employee, repo *stubAttendanceRepo) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		EmployeeRepository:   &stubEmployeeRepo{employees: employees},
		lateCutoff:           config.Clock{Hour: 9, Minute: 30},
		heatmapLateHour:      10,
	}
}

func TestCheckOutUnknownEmployee(t *testing.T) {
	svc := newTestService(nil, &stubAttendanceRepo{})

	_, err := svc.CheckOut(context.Background(), attendance.CheckRequest{EmployeeID: "missing"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckOutWithoutOpenRecord(t *testing.T) {
	svc := newTestService(
		[]employee.Employee{{ID: "e1", EmpCode: "EMP001"}},
		&stubAttendanceRepo{},
	)

	_, err := svc.CheckOut(context.Background(), attendance.CheckRequest{EmployeeID: "e1"})
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestCheckOutClosesOpenRecord(t *testing.T) {
	checkIn := time.Date(2026, time.July, 15, 9, 0, 0, 0, time.UTC)
	repo := &stubAttendanceRepo{open: map[string]attendance.Attendance{
		"e1": {ID: "a1", EmployeeID: "e1", CheckIn: &checkIn, Date: checkIn.Truncate(24 * time.Hour)},
	}}
	svc := newTestService([]employee.Employee{{ID: "e1", EmpCode: "EMP001"}}, repo)

	resp, err := svc.CheckOut(context.Background(), attendance.CheckRequest{EmployeeID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, "a1", resp.ID)
	assert.NotNil(t, resp.CheckOut)
}

// The monthly summary spans all employees: a date counts once no matter
// how many people attended, and hours accumulate across everyone.
func TestGetMonthlySummaryIsCompanyWide(t *testing.T) {
	at := func(day, hour int) *time.Time {
		t := time.Date(2026, time.July, day, hour, 0, 0, 0, time.UTC)
		return &t
	}
	day := func(d int) time.Time {
		return time.Date(2026, time.July, d, 0, 0, 0, 0, time.UTC)
	}

	repo := &stubAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "e1", Date: day(1), CheckIn: at(1, 9), CheckOut: at(1, 17)},
		{EmployeeID: "e2", Date: day(1), CheckIn: at(1, 9), CheckOut: at(1, 17)},
		{EmployeeID: "e1", Date: day(2), CheckIn: at(2, 9)},
	}}
	svc := newTestService(nil, repo)

	summary, err := svc.GetMonthlySummary(context.Background(), 2026, time.July)
	require.NoError(t, err)

	assert.Equal(t, 2026, summary.Year)
	assert.Equal(t, 7, summary.Month)
	assert.Equal(t, 2, summary.PresentDays)
	assert.InDelta(t, 16.0, summary.TotalHours, 1e-9)
}
