package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Phase is where a day's record sits in the clock-in/clock-out lifecycle.
// Transitions only move forward: NotStarted -> Open -> Closed.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseOpen
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseClosed:
		return "closed"
	default:
		return "not_started"
	}
}

// Phase derives the lifecycle phase from the recorded instants. A nil record has not started.
func (a *Attendance) Phase() Phase {
	if a == nil || a.ClockIn == nil {
		return PhaseNotStarted
	}
	if a.ClockOut == nil {
		return PhaseOpen
	}
	return PhaseClosed
}

// Open records the clock-in instant.
func (a *Attendance) Open(at time.Time, status Status) error {
	if a.Phase() != PhaseNotStarted {
		return ErrAlreadyCheckedIn
	}
	a.ClockIn = &at
	a.Status = status
	return nil
}

// Close records the clock-out instant and the derived total hours.
// A clock-out earlier than the clock-in is stamped at the clock-in instant, keeping ClockOut >= ClockIn.
func (a *Attendance) Close(at time.Time) error {
	switch a.Phase() {
	case PhaseNotStarted:
		return ErrNotCheckedIn
	case PhaseClosed:
		return ErrAlreadyCheckedOut
	}

	if at.Before(*a.ClockIn) {
		at = *a.ClockIn
	}
	a.ClockOut = &at

	hours := DecimalHours(ElapsedWorked(a.ClockIn, a.ClockOut, at))
	a.TotalHours = &hours
	return nil
}

// ElapsedWorked returns the time between clock-in and clock-out, using now while the record is open.
// A missing clock-in yields zero, and an end before the start is clamped to zero.
func ElapsedWorked(checkIn, checkOut *time.Time, now time.Time) time.Duration {
	if checkIn == nil {
		return 0
	}

	end := now
	if checkOut != nil {
		end = *checkOut
	}

	elapsed := end.Sub(*checkIn)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// WorkedTime is a duration split into whole hours and remaining whole minutes.
type WorkedTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func SplitWorked(d time.Duration) WorkedTime {
	if d < 0 {
		d = 0
	}
	return WorkedTime{
		Hours:   int(d / time.Hour),
		Minutes: int((d % time.Hour) / time.Minute),
	}
}

// FormatClock renders d as H:MM, e.g. 8:05.
func FormatClock(d time.Duration) string {
	w := SplitWorked(d)
	return fmt.Sprintf("%d:%02d", w.Hours, w.Minutes)
}

// DecimalHours converts d to hours rounded half away from zero to two decimal places.
func DecimalHours(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	hours := decimal.NewFromInt(int64(d)).Div(decimal.NewFromInt(int64(time.Hour)))
	return hours.Round(2).InexactFloat64()
}

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses YYYY-MM.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return MonthOf(t), nil
}

// MonthOf returns the calendar month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// CurrentMonth is the month containing now in loc.
func CurrentMonth(now time.Time, loc *time.Location) Month {
	return MonthOf(now.In(loc))
}

// Start is the first calendar day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last calendar day of the month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

// Contains reports whether date falls inside the month. Both boundary dates are included.
func (m Month) Contains(date time.Time) bool {
	y, mo, _ := date.Date()
	return y == m.Year && mo == m.Month
}

func (m Month) String() string {
	return m.Start().Format("2006-01")
}

// MonthlyStatistics tallies one employee's records for one month.
type MonthlyStatistics struct {
	PresentDays      int
	LateDays         int
	AbsentDays       int
	OnLeaveDays      int
	TotalWorkingDays int
	AttendanceRate   float64
}

// MonthlyStats counts the records dated inside month by status.
//
// TotalWorkingDays is the number of those records, not the number of working days in the
// calendar: a day with no record at all is left out of the denominator rather than counted
// as absent. AttendanceRate is (present + late) / total * 100, and 0 when there are no records.
func MonthlyStats(records []Attendance, month Month) MonthlyStatistics {
	var stats MonthlyStatistics
	for _, rec := range records {
		if !month.Contains(rec.Date) {
			continue
		}

		stats.TotalWorkingDays++
		switch rec.Status {
		case StatusPresent:
			stats.PresentDays++
		case StatusLate:
			stats.LateDays++
		case StatusAbsent:
			stats.AbsentDays++
		case StatusOnLeave:
			stats.OnLeaveDays++
		}
	}

	if stats.TotalWorkingDays > 0 {
		attended := stats.PresentDays + stats.LateDays
		stats.AttendanceRate = float64(attended*100) / float64(stats.TotalWorkingDays)
	}
	return stats
}

// ClockInStatus decides between present and late: late once at is past the workday start plus grace.
// workdayStart carries only the hour and minute; the day is taken from at in loc.
func ClockInStatus(at time.Time, loc *time.Location, workdayStart time.Time, grace time.Duration) Status {
	local := at.In(loc)
	scheduled := time.Date(local.Year(), local.Month(), local.Day(), workdayStart.Hour(), workdayStart.Minute(), 0, 0, loc)
	if local.After(scheduled.Add(grace)) {
		return StatusLate
	}
	return StatusPresent
}

// LocalDate is the calendar date of at in loc, as a UTC midnight value suitable for a DATE column.
func LocalDate(at time.Time, loc *time.Location) time.Time {
	y, m, d := at.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
