package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/employee"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/database"
	"github.com/cloudhrms/hrms-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	setupOnce  sync.Once
	setupError error
)

const testSchema = `
CREATE TABLE IF NOT EXISTS employees (
	id          uuid PRIMARY KEY,
	emp_code    text NOT NULL UNIQUE,
	name        text NOT NULL,
	status      text NOT NULL,
	email       text NOT NULL UNIQUE,
	department  text NOT NULL,
	role        text NOT NULL,
	salary      numeric(10,2) NOT NULL,
	date_joined date NOT NULL,
	created_at  timestamptz NOT NULL DEFAULT now(),
	updated_at  timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS attendances (
	id          uuid PRIMARY KEY,
	employee_id uuid NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	check_in    timestamptz,
	check_out   timestamptz,
	date        date NOT NULL,
	created_at  timestamptz NOT NULL DEFAULT now(),
	updated_at  timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS leaves (
	id          uuid PRIMARY KEY,
	employee_id uuid NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	leave_type  text NOT NULL,
	start_date  date NOT NULL,
	end_date    date NOT NULL,
	reason      text NOT NULL,
	status      text NOT NULL,
	applied_on  timestamptz NOT NULL DEFAULT now(),
	updated_at  timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS payrolls (
	id             uuid PRIMARY KEY,
	employee_id    uuid NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
	month          int NOT NULL,
	year           int NOT NULL,
	basic_salary   numeric(10,2) NOT NULL,
	working_days   int NOT NULL,
	present_days   int NOT NULL,
	absent_days    int NOT NULL,
	lop_days       int NOT NULL,
	overtime_hours numeric(10,2) NOT NULL,
	overtime_pay   numeric(10,2) NOT NULL,
	gross_salary   numeric(10,2) NOT NULL,
	net_salary     numeric(10,2) NOT NULL,
	generated_on   timestamptz NOT NULL,
	UNIQUE (employee_id, month, year)
);
`

// setupDB connects once per test binary and ensures the schema exists.
// Tests are skipped entirely when TEST_DATABASE_URL is unset.
func setupDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration tests")
	}

	setupOnce.Do(func() {
		testDB, setupError = database.NewPostgreSQLDB(dsn)
		if setupError != nil {
			return
		}
		_, setupError = testDB.Exec(context.Background(), testSchema)
	})
	require.NoError(t, setupError)

	return testDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	_, err := db.Exec(ctx, "TRUNCATE TABLE employees CASCADE")
	require.NoError(t, err)
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, empCode, email string) employee.Employee {
	t.Helper()

	repo := postgresql.NewEmployeeRepository(db)
	created, err := repo.Create(ctx, employee.Employee{
		EmpCode:    empCode,
		Name:       "Test Employee " + empCode,
		Status:     employee.StatusActive,
		Email:      email,
		Department: "Engineering",
		Role:       "Developer",
		Salary:     decimal.NewFromInt(30000),
		DateJoined: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return created
}
