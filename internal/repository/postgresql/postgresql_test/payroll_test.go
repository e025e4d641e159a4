package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/payroll"
	"github.com/cloudhrms/hrms-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayroll(employeeID string, month, year int, net string) payroll.Payroll {
	return payroll.Payroll{
		EmployeeID:    employeeID,
		Month:         month,
		Year:          year,
		BasicSalary:   decimal.NewFromInt(30000),
		WorkingDays:   30,
		PresentDays:   25,
		AbsentDays:    5,
		LOPDays:       5,
		OvertimeHours: decimal.Zero,
		OvertimePay:   decimal.Zero,
		GrossSalary:   decimal.NewFromInt(30000),
		NetSalary:     decimal.RequireFromString(net),
		GeneratedOn:   time.Now().UTC(),
	}
}

func TestPayrollUpsertReplacesOnNaturalKey(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewPayrollRepository(db)

	first, err := repo.Upsert(ctx, testPayroll(emp.ID, 7, 2026, "25000"))
	require.NoError(t, err)

	// Same period again: the record is replaced, not duplicated.
	updated := testPayroll(emp.ID, 7, 2026, "27000")
	updated.PresentDays = 27
	_, err = repo.Upsert(ctx, updated)
	require.NoError(t, err)

	records, err := repo.ListByPeriod(ctx, 2026, 7)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, 27, records[0].PresentDays)
	assert.True(t, records[0].NetSalary.Equal(decimal.NewFromInt(27000)))
}

func TestPayrollGetByIDJoinsEmployee(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewPayrollRepository(db)

	created, err := repo.Upsert(ctx, testPayroll(emp.ID, 7, 2026, "25000"))
	require.NoError(t, err)

	record, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, record.EmployeeCode)
	assert.Equal(t, "EMP001", *record.EmployeeCode)
	require.NotNil(t, record.EmployeeEmail)
	assert.Equal(t, "emp001@example.com", *record.EmployeeEmail)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestPayrollListByEmployeeNewestFirst(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	emp := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	repo := postgresql.NewPayrollRepository(db)

	for _, period := range []struct{ month, year int }{
		{11, 2025}, {1, 2026}, {12, 2025},
	} {
		_, err := repo.Upsert(ctx, testPayroll(emp.ID, period.month, period.year, "25000"))
		require.NoError(t, err)
	}

	records, err := repo.ListByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, [2]int{1, 2026}, [2]int{records[0].Month, records[0].Year})
	assert.Equal(t, [2]int{12, 2025}, [2]int{records[1].Month, records[1].Year})
	assert.Equal(t, [2]int{11, 2025}, [2]int{records[2].Month, records[2].Year})
}

func TestPayrollSummaryAndChart(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	empA := createTestEmployee(t, ctx, db, "EMP001", "emp001@example.com")
	empB := createTestEmployee(t, ctx, db, "EMP002", "emp002@example.com")
	repo := postgresql.NewPayrollRepository(db)

	_, err := repo.Upsert(ctx, testPayroll(empA.ID, 7, 2026, "25000"))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, testPayroll(empB.ID, 7, 2026, "30000"))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, testPayroll(empA.ID, 8, 2026, "28000"))
	require.NoError(t, err)

	summary, err := repo.GetSummary(ctx, 2026, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.Count)
	assert.True(t, summary.TotalGross.Equal(decimal.NewFromInt(60000)))
	assert.True(t, summary.TotalNet.Equal(decimal.NewFromInt(55000)))

	// Empty periods still report zero totals.
	empty, err := repo.GetSummary(ctx, 2026, 1)
	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.True(t, empty.TotalNet.Equal(decimal.Zero))

	chart, err := repo.GetChart(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, chart, 2)
	assert.Equal(t, 7, chart[0].Month)
	assert.Equal(t, 8, chart[1].Month)
	assert.True(t, chart[0].TotalNet.Equal(decimal.NewFromInt(55000)))
}
