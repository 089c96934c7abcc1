package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// Summary gathers the dashboard counters for a month
	Summary(ctx context.Context, req MonthRequest) (SummaryResponse, error)

	// Generate Monthly Attendance Report, one row per active employee
	GenerateMonthlyAttendanceReport(ctx context.Context, req MonthRequest) (MonthlyAttendanceReport, error)

	// ExportMonthlyAttendance renders the monthly attendance report as an XLSX workbook
	ExportMonthlyAttendance(ctx context.Context, req MonthRequest) (ExportFile, error)
}
