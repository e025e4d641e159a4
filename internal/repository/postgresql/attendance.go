package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudhrms/hrms-backend-go/internal/domain/attendance"
	"github.com/cloudhrms/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att.ID = uuid.NewString()

	query := `
		INSERT INTO attendances (id, employee_id, check_in, check_out, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.CheckIn, att.CheckOut, att.Date,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetOpenRecord implements attendance.AttendanceRepository. The most
// recently created open record wins; older open records stay open.
func (r *attendanceRepository) GetOpenRecord(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, check_in, check_out, date, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND check_out IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut, &att.Date,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open attendance record: %w", err)
	}

	return att, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, employee_id, check_in, check_out, date, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, checkOut, time.Now().UTC(), id).Scan(
		&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut, &att.Date,
		&att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return att, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, check_in, check_out, date, created_at, updated_at
		FROM attendances
		WHERE date = $1
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByPeriod(ctx context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT id, employee_id, check_in, check_out, date, created_at, updated_at
		FROM attendances
		WHERE date >= $1 AND date < $2
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by period: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByEmployeePeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT id, employee_id, check_in, check_out, date, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by employee and period: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// CountDistinctDates implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountDistinctDates(ctx context.Context, employeeID string, year int, month time.Month) (int, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT COUNT(DISTINCT date)
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date < $3
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count distinct attendance dates: %w", err)
	}

	return count, nil
}

// ListRecent implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRecent(ctx context.Context, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.check_in, a.check_out, a.date,
		       a.created_at, a.updated_at, e.name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		ORDER BY a.check_in DESC NULLS LAST
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut, &att.Date,
			&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut, &att.Date,
			&att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	return attendances, rows.Err()
}
