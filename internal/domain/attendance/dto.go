package attendance

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

const (
	DefaultMyLimit = 10
	MaxListLimit   = 100

	// Placeholder shown wherever a time or name is missing.
	missingDisplay = "-"
)

type ClockInRequest struct {
	EmployeeID string  `json:"-"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Notes != nil && len(*r.Notes) > 500 {
		errs.Add("notes", "notes must not exceed 500 characters")
	}

	return errs.OrNil()
}

type ClockOutRequest struct {
	EmployeeID   string  `json:"-"`
	BreakMinutes *int    `json:"break_minutes,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.BreakMinutes != nil && (*r.BreakMinutes < 0 || *r.BreakMinutes > 24*60) {
		errs.Add("break_minutes", "break_minutes must be between 0 and 1440")
	}
	if r.Notes != nil && len(*r.Notes) > 500 {
		errs.Add("notes", "notes must not exceed 500 characters")
	}

	return errs.OrNil()
}

type MyAttendanceFilter struct {
	EmployeeID string `json:"-"`
	Limit      int    `json:"limit"`
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	if f.Limit == 0 {
		f.Limit = DefaultMyLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}

	return errs.OrNil()
}

type StatsRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"` // YYYY-MM, defaults to the current month
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs.Add("month", "month must be in YYYY-MM format")
		}
	}

	return errs.OrNil()
}

type TeamFilter struct {
	Date   string  `json:"date"` // YYYY-MM-DD, defaults to today
	Status *string `json:"status,omitempty"`
}

func (f *TeamFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, Statuses) {
		errs.Add("status", "status must be one of present, late, absent, on-leave")
	}

	return errs.OrNil()
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   string   `json:"employee_name"`
	EmployeeNumber string   `json:"employee_number"`
	Date           string   `json:"date"`
	ClockInTime    string   `json:"clock_in_time"`
	ClockOutTime   string   `json:"clock_out_time"`
	HoursWorked    string   `json:"hours_worked"`
	TotalHours     *float64 `json:"total_hours,omitempty"`
	BreakMinutes   int      `json:"break_minutes"`
	Status         string   `json:"status"`
	Notes          *string  `json:"notes,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// NewAttendanceResponse renders a record for display. Clock times are shown in loc;
// an open record's hours_worked runs up to now.
func NewAttendanceResponse(a Attendance, loc *time.Location, now time.Time) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   stringOr(a.EmployeeName, missingDisplay),
		EmployeeNumber: stringOr(a.EmployeeNumber, missingDisplay),
		Date:           a.Date.Format("2006-01-02"),
		ClockInTime:    clockOrDash(a.ClockIn, loc),
		ClockOutTime:   clockOrDash(a.ClockOut, loc),
		HoursWorked:    FormatClock(ElapsedWorked(a.ClockIn, a.ClockOut, now)),
		TotalHours:     a.TotalHours,
		BreakMinutes:   a.BreakMinutes,
		Status:         string(a.Status),
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
	}
}

func NewAttendanceResponses(records []Attendance, loc *time.Location, now time.Time) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, NewAttendanceResponse(rec, loc, now))
	}
	return out
}

// TodayResponse is the dashboard card: the day's record, if any, and the running total.
type TodayResponse struct {
	Date        string              `json:"date"`
	Phase       string              `json:"phase"`
	Attendance  *AttendanceResponse `json:"attendance"`
	Worked      WorkedTime          `json:"worked"`
	HoursWorked string              `json:"hours_worked"`
}

type MonthlyStatsResponse struct {
	EmployeeID       string  `json:"employee_id"`
	Month            string  `json:"month"`
	PresentDays      int     `json:"present_days"`
	LateDays         int     `json:"late_days"`
	AbsentDays       int     `json:"absent_days"`
	OnLeaveDays      int     `json:"on_leave_days"`
	TotalWorkingDays int     `json:"total_working_days"`
	AttendanceRate   float64 `json:"attendance_rate"`
}

func NewMonthlyStatsResponse(employeeID string, month Month, s MonthlyStatistics) MonthlyStatsResponse {
	return MonthlyStatsResponse{
		EmployeeID:       employeeID,
		Month:            month.String(),
		PresentDays:      s.PresentDays,
		LateDays:         s.LateDays,
		AbsentDays:       s.AbsentDays,
		OnLeaveDays:      s.OnLeaveDays,
		TotalWorkingDays: s.TotalWorkingDays,
		AttendanceRate:   s.AttendanceRate,
	}
}

type TeamAttendanceResponse struct {
	Date    string               `json:"date"`
	Records []AttendanceResponse `json:"records"`
}

func clockOrDash(t *time.Time, loc *time.Location) string {
	if t == nil {
		return missingDisplay
	}
	return t.In(loc).Format("15:04")
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
