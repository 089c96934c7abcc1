package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.break_duration, a.total_hours, a.status, a.notes, a.created_at, a.updated_at,
	NULLIF(concat_ws(' ', e.first_name, e.middle_name, e.last_name), ''), e.employee_id`

const attendanceFrom = `
	FROM attendance a
	LEFT JOIN employees e ON e.id = a.employee_id`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.BreakMinutes, &att.TotalHours, &att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeeNumber,
	)
	return att, err
}

func (a *attendanceRepository) queryAttendance(ctx context.Context, query string, args ...any) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (employee_id, date, check_in_time, check_out_time, break_duration, total_hours, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.ClockIn,
		newAttendance.ClockOut,
		newAttendance.BreakMinutes,
		newAttendance.TotalHours,
		newAttendance.Status,
		newAttendance.Notes,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		if isPgCode(err, pgUniqueViolation) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", mapPgError(err))
	}

	return newAttendance, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", mapPgError(err))
	}

	return &att, nil
}

// MarkClockIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) MarkClockIn(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET check_in_time = $2, status = $3, notes = COALESCE($4, notes), updated_at = NOW()
		WHERE id = $1 AND check_in_time IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, att.ID, att.ClockIn, att.Status, att.Notes).Scan(&att.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to mark clock-in: %w", mapPgError(err))
	}

	return att, nil
}

// MarkClockOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) MarkClockOut(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET check_out_time = $2, total_hours = $3, break_duration = $4, notes = COALESCE($5, notes), updated_at = NOW()
		WHERE id = $1 AND check_in_time IS NOT NULL AND check_out_time IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, att.ID, att.ClockOut, att.TotalHours, att.BreakMinutes, att.Notes).Scan(&att.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to mark clock-out: %w", mapPgError(err))
	}

	return att, nil
}

// ListRecent implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRecent(ctx context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
		LIMIT $2
	`

	records, err := a.queryAttendance(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendance: %w", err)
	}
	return records, nil
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	records, err := a.queryAttendance(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee: %w", err)
	}
	return records, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time, status *string) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.date = $1 AND ($2::text IS NULL OR a.status = $2)
		ORDER BY e.first_name, e.last_name
	`

	records, err := a.queryAttendance(ctx, query, date, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	return records, nil
}

// ListBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.date BETWEEN $1 AND $2
		ORDER BY a.employee_id, a.date
	`

	records, err := a.queryAttendance(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// CountBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date BETWEEN $1 AND $2`, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", mapPgError(err))
	}
	return count, nil
}
