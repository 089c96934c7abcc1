package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on-leave"
)

// Statuses lists every status value the store accepts.
var Statuses = []string{string(StatusPresent), string(StatusLate), string(StatusAbsent), string(StatusOnLeave)}

// Attendance is one employee's presence data for one calendar date.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time // calendar date, time of day is zero
	ClockIn      *time.Time
	ClockOut     *time.Time
	BreakMinutes int
	TotalHours   *float64
	Status       Status
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	EmployeeName   *string
	EmployeeNumber *string
}
