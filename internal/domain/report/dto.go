package report

import (
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

// MonthRequest selects the reporting month; empty means the current month.
type MonthRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs.Add("month", ErrInvalidMonth.Error())
		}
	}

	return errs.OrNil()
}

type DepartmentHeadcount struct {
	DepartmentID  string `json:"department_id"`
	Name          string `json:"name"`
	EmployeeCount int64  `json:"employee_count"`
}

type SummaryResponse struct {
	Month                string                `json:"month"`
	TotalEmployees       int64                 `json:"total_employees"`
	ActiveEmployees      int64                 `json:"active_employees"`
	PendingLeaveRequests int64                 `json:"pending_leave_requests"`
	AttendanceRecords    int64                 `json:"attendance_records"`
	AttendanceRate       float64               `json:"attendance_rate"`
	EmploymentTypes      map[string]int64      `json:"employment_types"`
	Departments          []DepartmentHeadcount `json:"departments"`
}

type MonthlyAttendanceRow struct {
	EmployeeID       string  `json:"employee_id"`
	EmployeeNumber   string  `json:"employee_number"`
	EmployeeName     string  `json:"employee_name"`
	Department       string  `json:"department"`
	PresentDays      int     `json:"present_days"`
	LateDays         int     `json:"late_days"`
	AbsentDays       int     `json:"absent_days"`
	OnLeaveDays      int     `json:"on_leave_days"`
	TotalWorkingDays int     `json:"total_working_days"`
	AttendanceRate   float64 `json:"attendance_rate"`
	HoursWorked      float64 `json:"hours_worked"`
}

type MonthlyAttendanceReport struct {
	Month string                 `json:"month"`
	Rows  []MonthlyAttendanceRow `json:"rows"`
}

// ExportFile is a generated spreadsheet ready to stream.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
