package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func hours(h float64) *float64 { return &h }

type fixture struct {
	svc       *ReportServiceImpl
	employees *mockEmployeeRepo
}

func newFixture() fixture {
	eng := "Engineering"
	last := "Wijaya"
	employees := &mockEmployeeRepo{employees: []employee.Employee{
		{ID: "e2", EmployeeNumber: "EMP002", FirstName: "Budi", DepartmentName: &eng, EmploymentType: employee.EmploymentTypeFullTime, Status: employee.EmploymentStatusActive},
		{ID: "e1", EmployeeNumber: "EMP001", FirstName: "Rina", LastName: &last, EmploymentType: employee.EmploymentTypeContract, Status: employee.EmploymentStatusActive},
		{ID: "e3", EmployeeNumber: "EMP003", FirstName: "Old", EmploymentType: employee.EmploymentTypeFullTime, Status: employee.EmploymentStatusInactive},
	}}

	records := []attendance.Attendance{}
	// e1: 20 present, 2 late, 3 absent in March
	for d := 1; d <= 25; d++ {
		status := attendance.StatusPresent
		switch {
		case d > 22:
			status = attendance.StatusAbsent
		case d > 20:
			status = attendance.StatusLate
		}
		rec := attendance.Attendance{EmployeeID: "e1", Date: day(d), Status: status}
		if status != attendance.StatusAbsent {
			rec.TotalHours = hours(8.5)
		}
		records = append(records, rec)
	}
	records = append(records,
		attendance.Attendance{EmployeeID: "e2", Date: day(3), Status: attendance.StatusOnLeave},
		attendance.Attendance{EmployeeID: "e2", Date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
	)

	svc := NewReportService(
		employees,
		&mockLeaveRequestRepo{pending: 4},
		&mockAttendanceRepo{records: records},
		&mockDepartmentRepo{departments: []department.Department{{ID: "d1", Name: "Engineering", EmployeeCount: 1}}},
		time.UTC,
	).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 3, 28, 12, 0, 0, 0, time.UTC) }

	return fixture{svc: svc, employees: employees}
}

func TestSummary(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Summary(context.Background(), report.MonthRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2025-03", resp.Month)
	assert.Equal(t, int64(3), resp.TotalEmployees)
	assert.Equal(t, int64(2), resp.ActiveEmployees)
	assert.Equal(t, int64(4), resp.PendingLeaveRequests)
	assert.Equal(t, int64(26), resp.AttendanceRecords)
	// 22 attended of 26 records
	assert.InDelta(t, 84.615, resp.AttendanceRate, 0.001)
	assert.Equal(t, map[string]int64{"full-time": 2, "part-time": 0, "contract": 1, "intern": 0}, resp.EmploymentTypes)
	require.Len(t, resp.Departments, 1)
	assert.Equal(t, int64(1), resp.Departments[0].EmployeeCount)
}

func TestSummary_RepositoryErrorStopsFanOut(t *testing.T) {
	f := newFixture()
	f.employees.err = errors.New("connection refused")

	_, err := f.svc.Summary(context.Background(), report.MonthRequest{Month: "2025-03"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSummary_InvalidMonth(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Summary(context.Background(), report.MonthRequest{Month: "2025-13"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestGenerateMonthlyAttendanceReport(t *testing.T) {
	f := newFixture()

	data, err := f.svc.GenerateMonthlyAttendanceReport(context.Background(), report.MonthRequest{Month: "2025-03"})
	require.NoError(t, err)
	require.Len(t, data.Rows, 2, "inactive employees are left out")

	rina := data.Rows[0]
	assert.Equal(t, "EMP001", rina.EmployeeNumber)
	assert.Equal(t, "Rina Wijaya", rina.EmployeeName)
	assert.Equal(t, employee.Unassigned, rina.Department)
	assert.Equal(t, 20, rina.PresentDays)
	assert.Equal(t, 2, rina.LateDays)
	assert.Equal(t, 3, rina.AbsentDays)
	assert.Equal(t, 25, rina.TotalWorkingDays)
	assert.Equal(t, 88.0, rina.AttendanceRate)
	assert.Equal(t, 187.0, rina.HoursWorked)

	budi := data.Rows[1]
	assert.Equal(t, "Engineering", budi.Department)
	assert.Equal(t, 1, budi.OnLeaveDays)
	assert.Equal(t, 1, budi.TotalWorkingDays)
	assert.Zero(t, budi.AttendanceRate)
}

func TestExportMonthlyAttendance(t *testing.T) {
	f := newFixture()

	file, err := f.svc.ExportMonthlyAttendance(context.Background(), report.MonthRequest{Month: "2025-03"})
	require.NoError(t, err)
	assert.Equal(t, "attendance-2025-03.xlsx", file.Filename)
	assert.Equal(t, xlsxContentType, file.ContentType)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Attendance 2025-03")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, []string{"EMP001", "Rina Wijaya", "Unassigned", "20", "2", "3", "0", "25", "88", "187"}, rows[1])
	assert.Equal(t, "EMP002", rows[2][0])
}
