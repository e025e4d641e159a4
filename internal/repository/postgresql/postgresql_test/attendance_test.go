package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/attendance"
	"github.com/cloudhrms/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkIn(t *testing.T, ctx context.Context, repo attendance.AttendanceRepository, employeeID string, at time.Time) attendance.Attendance {
	t.Helper()

	rec, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		CheckIn:    &at,
		Date:       time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return rec
}

func TestAttendanceOpenSessionResolution(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	day := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)
	first := checkIn(t, ctx, repo, emp.ID, day.Add(9*time.Hour))
	second := checkIn(t, ctx, repo, emp.ID, day.Add(13*time.Hour))

	// The newest open record wins.
	open, err := repo.GetOpenRecord(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, open.ID)

	closed, err := repo.SetCheckOut(ctx, open.ID, day.Add(17*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, closed.CheckOut)

	// The older record is still open.
	open, err = repo.GetOpenRecord(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, open.ID)

	_, err = repo.SetCheckOut(ctx, open.ID, day.Add(18*time.Hour))
	require.NoError(t, err)

	_, err = repo.GetOpenRecord(ctx, emp.ID)
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestAttendanceCountDistinctDates(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	day := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)
	// Two check-ins on the same date count as one present day.
	checkIn(t, ctx, repo, emp.ID, day.Add(9*time.Hour))
	checkIn(t, ctx, repo, emp.ID, day.Add(14*time.Hour))
	checkIn(t, ctx, repo, emp.ID, day.AddDate(0, 0, 1).Add(9*time.Hour))
	// Outside the period.
	checkIn(t, ctx, repo, emp.ID, day.AddDate(0, 1, 0).Add(9*time.Hour))

	count, err := repo.CountDistinctDates(ctx, emp.ID, 2026, time.July)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAttendanceListByPeriodHalfOpenInterval(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	checkIn(t, ctx, repo, emp.ID, time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC))
	checkIn(t, ctx, repo, emp.ID, time.Date(2026, time.July, 31, 9, 0, 0, 0, time.UTC))
	checkIn(t, ctx, repo, emp.ID, time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC))

	records, err := repo.ListByEmployeePeriod(ctx, emp.ID, 2026, time.July)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestAttendanceListRecentJoinsEmployeeName(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewAttendanceRepository(db)

	day := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)
	checkIn(t, ctx, repo, emp.ID, day.Add(9*time.Hour))
	checkIn(t, ctx, repo, emp.ID, day.Add(13*time.Hour))

	records, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Newest check-in first.
	require.NotNil(t, records[0].CheckIn)
	assert.Equal(t, 13, records[0].CheckIn.UTC().Hour())
	require.NotNil(t, records[0].EmployeeName)
	assert.Equal(t, emp.Name, *records[0].EmployeeName)
}
