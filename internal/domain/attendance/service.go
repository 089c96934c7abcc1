package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens today's record for the employee
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes the employee's open record for today
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	Today(ctx context.Context, employeeID string) (TodayResponse, error)

	MyAttendance(ctx context.Context, filter MyAttendanceFilter) ([]AttendanceResponse, error)

	// MonthlyStats tallies one employee's month
	MonthlyStats(ctx context.Context, req StatsRequest) (MonthlyStatsResponse, error)

	// TeamAttendance lists every record for a single day (managers, HR)
	TeamAttendance(ctx context.Context, filter TeamFilter) (TeamAttendanceResponse, error)
}
