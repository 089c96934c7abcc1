package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	leaveRequestRepo leave.LeaveRequestRepository
	attendanceRepo   attendance.AttendanceRepository
	departmentRepo   department.DepartmentRepository
	location         *time.Location
	now              func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	departmentRepo department.DepartmentRepository,
	location *time.Location,
) report.ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportServiceImpl{
		employeeRepo:     employeeRepo,
		leaveRequestRepo: leaveRequestRepo,
		attendanceRepo:   attendanceRepo,
		departmentRepo:   departmentRepo,
		location:         location,
		now:              time.Now,
	}
}

func (s *ReportServiceImpl) month(req report.MonthRequest) (attendance.Month, error) {
	if err := req.Validate(); err != nil {
		return attendance.Month{}, err
	}
	if req.Month == "" {
		return attendance.CurrentMonth(s.now(), s.location), nil
	}
	return attendance.ParseMonth(req.Month)
}

// Summary implements report.ReportService.
func (s *ReportServiceImpl) Summary(ctx context.Context, req report.MonthRequest) (report.SummaryResponse, error) {
	month, err := s.month(req)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	var (
		total, active, pending int64
		records                []attendance.Attendance
		types                  map[employee.EmploymentType]int64
		departments            []department.Department
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.employeeRepo.CountAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		total = n
		return nil
	})

	g.Go(func() error {
		n, err := s.employeeRepo.CountByStatus(gCtx, employee.EmploymentStatusActive)
		if err != nil {
			return fmt.Errorf("failed to count active employees: %w", err)
		}
		active = n
		return nil
	})

	g.Go(func() error {
		n, err := s.leaveRequestRepo.CountByStatus(gCtx, leave.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to count pending leave requests: %w", err)
		}
		pending = n
		return nil
	})

	g.Go(func() error {
		list, err := s.attendanceRepo.ListBetween(gCtx, month.Start(), month.End())
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		records = list
		return nil
	})

	g.Go(func() error {
		counts, err := s.employeeRepo.CountByEmploymentType(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employment types: %w", err)
		}
		types = counts
		return nil
	})

	g.Go(func() error {
		list, err := s.departmentRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list departments: %w", err)
		}
		departments = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.SummaryResponse{}, err
	}

	// Company-wide rate over every record of the month
	stats := attendance.MonthlyStats(records, month)

	resp := report.SummaryResponse{
		Month:                month.String(),
		TotalEmployees:       total,
		ActiveEmployees:      active,
		PendingLeaveRequests: pending,
		AttendanceRecords:    int64(stats.TotalWorkingDays),
		AttendanceRate:       stats.AttendanceRate,
		EmploymentTypes:      make(map[string]int64, len(employee.EmploymentTypes)),
		Departments:          make([]report.DepartmentHeadcount, 0, len(departments)),
	}
	for _, t := range employee.EmploymentTypes {
		resp.EmploymentTypes[t] = types[employee.EmploymentType(t)]
	}
	for _, d := range departments {
		resp.Departments = append(resp.Departments, report.DepartmentHeadcount{
			DepartmentID:  d.ID,
			Name:          d.Name,
			EmployeeCount: d.EmployeeCount,
		})
	}

	return resp, nil
}

// GenerateMonthlyAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateMonthlyAttendanceReport(ctx context.Context, req report.MonthRequest) (report.MonthlyAttendanceReport, error) {
	month, err := s.month(req)
	if err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	var (
		employees []employee.Employee
		records   []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.employeeRepo.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list active employees: %w", err)
		}
		employees = list
		return nil
	})
	g.Go(func() error {
		list, err := s.attendanceRepo.ListBetween(gCtx, month.Start(), month.End())
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		records = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	byEmployee := make(map[string][]attendance.Attendance, len(employees))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].EmployeeNumber < employees[j].EmployeeNumber
	})

	rows := make([]report.MonthlyAttendanceRow, 0, len(employees))
	for _, emp := range employees {
		own := byEmployee[emp.ID]
		stats := attendance.MonthlyStats(own, month)

		dept := employee.Unassigned
		if emp.DepartmentName != nil && *emp.DepartmentName != "" {
			dept = *emp.DepartmentName
		}

		rows = append(rows, report.MonthlyAttendanceRow{
			EmployeeID:       emp.ID,
			EmployeeNumber:   emp.EmployeeNumber,
			EmployeeName:     emp.FullName(),
			Department:       dept,
			PresentDays:      stats.PresentDays,
			LateDays:         stats.LateDays,
			AbsentDays:       stats.AbsentDays,
			OnLeaveDays:      stats.OnLeaveDays,
			TotalWorkingDays: stats.TotalWorkingDays,
			AttendanceRate:   stats.AttendanceRate,
			HoursWorked:      sumHours(own, month),
		})
	}

	return report.MonthlyAttendanceReport{Month: month.String(), Rows: rows}, nil
}

// sumHours adds the stored decimal hours of closed records inside month.
func sumHours(records []attendance.Attendance, month attendance.Month) float64 {
	sum := decimal.Zero
	for _, rec := range records {
		if rec.TotalHours == nil || !month.Contains(rec.Date) {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(*rec.TotalHours))
	}
	return sum.Round(2).InexactFloat64()
}

var exportHeaders = []string{
	"Employee Number", "Employee Name", "Department",
	"Present", "Late", "Absent", "On Leave", "Total Days", "Attendance Rate (%)", "Hours Worked",
}

// ExportMonthlyAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthlyAttendance(ctx context.Context, req report.MonthRequest) (report.ExportFile, error) {
	data, err := s.GenerateMonthlyAttendanceReport(ctx, req)
	if err != nil {
		return report.ExportFile{}, err
	}

	content, err := renderAttendanceWorkbook(data)
	if err != nil {
		slog.Error("Failed to render attendance workbook", "month", data.Month, "error", err)
		return report.ExportFile{}, errors.Join(report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		Filename:    fmt.Sprintf("attendance-%s.xlsx", data.Month),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

func renderAttendanceWorkbook(data report.MonthlyAttendanceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance " + data.Month
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheet, "A", "A", 16)
	_ = f.SetColWidth(sheet, "B", "C", 24)
	_ = f.SetColWidth(sheet, "D", "J", 12)

	for i, row := range data.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			row.EmployeeNumber, row.EmployeeName, row.Department,
			row.PresentDays, row.LateDays, row.AbsentDays, row.OnLeaveDays, row.TotalWorkingDays,
			row.AttendanceRate, row.HoursWorked,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
