package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/leave"
	"github.com/cloudhrms/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyLeave(t *testing.T, ctx context.Context, repo leave.LeaveRepository, employeeID string, leaveType leave.LeaveType, start time.Time) leave.Leave {
	t.Helper()

	created, err := repo.Create(ctx, leave.Leave{
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2),
		Reason:     "test leave",
		Status:     leave.LeaveStatusPending,
		AppliedOn:  time.Now().UTC(),
	})
	require.NoError(t, err)
	return created
}

func TestLeaveCreateAndGet(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewLeaveRepository(db)

	created := applyLeave(t, ctx, repo, emp.ID, leave.LeaveTypeSick, time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC))

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusPending, fetched.Status)
	require.NotNil(t, fetched.EmployeeCode)
	assert.Equal(t, "EMP001", *fetched.EmployeeCode)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestLeaveSetStatusUnconditional(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewLeaveRepository(db)

	created := applyLeave(t, ctx, repo, emp.ID, leave.LeaveTypeCasual, time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC))

	require.NoError(t, repo.SetStatus(ctx, created.ID, leave.LeaveStatusApproved))

	// Re-deciding an already-decided record succeeds.
	require.NoError(t, repo.SetStatus(ctx, created.ID, leave.LeaveStatusRejected))

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusRejected, fetched.Status)

	err = repo.SetStatus(ctx, "00000000-0000-0000-0000-000000000000", leave.LeaveStatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestLeaveAnalytics(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewLeaveRepository(db)

	applyLeave(t, ctx, repo, emp.ID, leave.LeaveTypeSick, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	applyLeave(t, ctx, repo, emp.ID, leave.LeaveTypeSick, time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC))
	applyLeave(t, ctx, repo, emp.ID, leave.LeaveTypeCasual, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC))

	byType, err := repo.CountByType(ctx)
	require.NoError(t, err)
	require.Len(t, byType, 2)
	assert.Equal(t, leave.LeaveTypeCasual, byType[0].LeaveType)
	assert.EqualValues(t, 1, byType[0].Total)
	assert.Equal(t, leave.LeaveTypeSick, byType[1].LeaveType)
	assert.EqualValues(t, 2, byType[1].Total)

	byMonth, err := repo.CountByStartMonth(ctx)
	require.NoError(t, err)
	require.Len(t, byMonth, 2)
	assert.Equal(t, 3, byMonth[0].Month)
	assert.EqualValues(t, 2, byMonth[0].Total)
	assert.Equal(t, 7, byMonth[1].Month)
	assert.EqualValues(t, 1, byMonth[1].Total)
}
