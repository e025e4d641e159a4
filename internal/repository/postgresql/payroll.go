package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/payroll"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Upsert implements payroll.PayrollRepository. Keyed on the natural
// (employee_id, month, year) tuple; a conflicting insert replaces the
// previous computation atomically.
func (r *payrollRepository) Upsert(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payrolls (
			id, employee_id, month, year, basic_salary, working_days,
			present_days, absent_days, lop_days, overtime_hours, overtime_pay,
			gross_salary, net_salary, generated_on
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			basic_salary   = EXCLUDED.basic_salary,
			working_days   = EXCLUDED.working_days,
			present_days   = EXCLUDED.present_days,
			absent_days    = EXCLUDED.absent_days,
			lop_days       = EXCLUDED.lop_days,
			overtime_hours = EXCLUDED.overtime_hours,
			overtime_pay   = EXCLUDED.overtime_pay,
			gross_salary   = EXCLUDED.gross_salary,
			net_salary     = EXCLUDED.net_salary,
			generated_on   = EXCLUDED.generated_on
		RETURNING id, generated_on
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.Month, p.Year, p.BasicSalary, p.WorkingDays,
		p.PresentDays, p.AbsentDays, p.LOPDays, p.OvertimeHours, p.OvertimePay,
		p.GrossSalary, p.NetSalary, p.GeneratedOn,
	).Scan(&p.ID, &p.GeneratedOn)

	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to upsert payroll: %w", err)
	}

	return p, nil
}

const payrollJoinedColumns = `
	p.id, p.employee_id, p.month, p.year, p.basic_salary, p.working_days,
	p.present_days, p.absent_days, p.lop_days, p.overtime_hours, p.overtime_pay,
	p.gross_salary, p.net_salary, p.generated_on,
	e.name, e.emp_code, e.email, e.department, e.role, e.date_joined`

func scanJoinedPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.BasicSalary, &p.WorkingDays,
		&p.PresentDays, &p.AbsentDays, &p.LOPDays, &p.OvertimeHours, &p.OvertimePay,
		&p.GrossSalary, &p.NetSalary, &p.GeneratedOn,
		&p.EmployeeName, &p.EmployeeCode, &p.EmployeeEmail,
		&p.EmployeeDepartment, &p.EmployeeRole, &p.EmployeeDateJoined,
	)
	return p, err
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payrollJoinedColumns + `
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanJoinedPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by ID: %w", err)
	}

	return p, nil
}

// ListByPeriod implements payroll.PayrollRepository.
func (r *payrollRepository) ListByPeriod(ctx context.Context, year, month int) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payrollJoinedColumns + `
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.year = $1 AND p.month = $2
		ORDER BY e.emp_code
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls by period: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payrollJoinedColumns + `
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.year DESC, p.month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls by employee: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

// GetSummary implements payroll.PayrollRepository.
func (r *payrollRepository) GetSummary(ctx context.Context, year, month int) (payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(gross_salary), 0),
		       COALESCE(SUM(net_salary), 0)
		FROM payrolls
		WHERE year = $1 AND month = $2
	`

	summary := payroll.Summary{Year: year, Month: month}
	err := q.QueryRow(ctx, query, year, month).Scan(
		&summary.Count, &summary.TotalGross, &summary.TotalNet,
	)
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}

// GetChart implements payroll.PayrollRepository.
func (r *payrollRepository) GetChart(ctx context.Context, year int) ([]payroll.ChartPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT month, SUM(gross_salary), SUM(net_salary)
		FROM payrolls
		WHERE year = $1
		GROUP BY month
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll chart: %w", err)
	}
	defer rows.Close()

	var points []payroll.ChartPoint
	for rows.Next() {
		var cp payroll.ChartPoint
		if err := rows.Scan(&cp.Month, &cp.TotalGross, &cp.TotalNet); err != nil {
			return nil, fmt.Errorf("failed to scan payroll chart point: %w", err)
		}
		points = append(points, cp)
	}

	return points, rows.Err()
}

func collectPayrolls(rows pgx.Rows) ([]payroll.Payroll, error) {
	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanJoinedPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, rows.Err()
}
