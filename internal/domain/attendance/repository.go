package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. A second record for the same employee and date returns ErrAlreadyCheckedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil, nil when the employee has no record for date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// MarkClockIn stamps the clock-in of an existing record that has none yet.
	MarkClockIn(ctx context.Context, attendance Attendance) (Attendance, error)

	// MarkClockOut stamps the clock-out only while the record is still open,
	// so a concurrent second clock-out gets ErrAlreadyCheckedOut.
	MarkClockOut(ctx context.Context, attendance Attendance) (Attendance, error)

	// ListRecent returns the employee's latest records, newest first.
	ListRecent(ctx context.Context, employeeID string, limit int) ([]Attendance, error)

	// ListByEmployeeBetween returns the employee's records dated from..to inclusive.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// ListByDate returns every employee's record for a day, optionally filtered by status.
	ListByDate(ctx context.Context, date time.Time, status *string) ([]Attendance, error)

	// ListBetween returns all records dated from..to inclusive.
	ListBetween(ctx context.Context, from, to time.Time) ([]Attendance, error)

	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
}
