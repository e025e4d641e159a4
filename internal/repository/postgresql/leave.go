package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/leave"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l.ID = uuid.NewString()

	query := `
		INSERT INTO leaves (id, employee_id, leave_type, start_date, end_date, reason, status, applied_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING applied_on
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate,
		l.Reason, l.Status, l.AppliedOn,
	).Scan(&l.AppliedOn)

	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
		       l.reason, l.status, l.applied_on, e.name, e.emp_code
		FROM leaves l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var l leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate,
		&l.Reason, &l.Status, &l.AppliedOn, &l.EmployeeName, &l.EmployeeCode,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave by ID: %w", err)
	}

	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
		       l.reason, l.status, l.applied_on, e.name, e.emp_code
		FROM leaves l
		LEFT JOIN employees e ON e.id = l.employee_id
		ORDER BY l.applied_on DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate,
			&l.Reason, &l.Status, &l.AppliedOn, &l.EmployeeName, &l.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

// SetStatus implements leave.LeaveRepository. No guard on the current
// status: re-deciding an already-decided record succeeds.
func (r *leaveRepository) SetStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE leaves SET status = $1, updated_at = $2 WHERE id = $3 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, time.Now().UTC(), id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to set leave status: %w", err)
	}

	return nil
}

// CountByType implements leave.LeaveRepository.
func (r *leaveRepository) CountByType(ctx context.Context) ([]leave.TypeCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, COUNT(*)
		FROM leaves
		GROUP BY leave_type
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count leaves by type: %w", err)
	}
	defer rows.Close()

	var counts []leave.TypeCount
	for rows.Next() {
		var tc leave.TypeCount
		if err := rows.Scan(&tc.LeaveType, &tc.Total); err != nil {
			return nil, fmt.Errorf("failed to scan leave type count: %w", err)
		}
		counts = append(counts, tc)
	}

	return counts, rows.Err()
}

// CountByStartMonth implements leave.LeaveRepository.
func (r *leaveRepository) CountByStartMonth(ctx context.Context) ([]leave.MonthCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXTRACT(MONTH FROM start_date)::int AS month, COUNT(*)
		FROM leaves
		GROUP BY month
		ORDER BY month
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count leaves by month: %w", err)
	}
	defer rows.Close()

	var counts []leave.MonthCount
	for rows.Next() {
		var mc leave.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Total); err != nil {
			return nil, fmt.Errorf("failed to scan leave month count: %w", err)
		}
		counts = append(counts, mc)
	}

	return counts, rows.Err()
}
