package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/config"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
)

// Settings decides which calendar day a clock-in belongs to and whether it is late.
type Settings struct {
	Location     *time.Location
	WorkdayStart time.Time // only hour and minute are used
	GracePeriod  time.Duration
}

func NewSettings(cfg config.AttendanceConfig) (Settings, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid attendance timezone %q: %w", cfg.Timezone, err)
	}
	start, err := time.Parse("15:04", cfg.WorkdayStart)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid workday start %q: %w", cfg.WorkdayStart, err)
	}
	return Settings{Location: loc, WorkdayStart: start, GracePeriod: cfg.GracePeriod}, nil
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	settings       Settings
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, settings Settings) attendance.AttendanceService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		settings:       settings,
		now:            time.Now,
	}
}

func (a *AttendanceServiceImpl) today(now time.Time) time.Time {
	return attendance.LocalDate(now, a.settings.Location)
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := a.now().UTC()
	date := a.today(now)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	record := existing
	if record == nil {
		record = &attendance.Attendance{EmployeeID: req.EmployeeID, Date: date}
	}

	status := attendance.ClockInStatus(now, a.settings.Location, a.settings.WorkdayStart, a.settings.GracePeriod)
	if err := record.Open(now, status); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	var saved attendance.Attendance
	if record.ID == "" {
		saved, err = a.attendanceRepo.Create(ctx, *record)
	} else {
		// A record created ahead of time (absent, on leave) without a clock-in
		saved, err = a.attendanceRepo.MarkClockIn(ctx, *record)
	}
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save clock-in: %w", err)
	}

	slog.Info("Employee clocked in", "employee_id", req.EmployeeID, "date", date.Format("2006-01-02"), "status", status)

	return attendance.NewAttendanceResponse(saved, a.settings.Location, now), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	now := a.now().UTC()
	date := a.today(now)

	record, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if err := record.Close(now); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if req.BreakMinutes != nil {
		record.BreakMinutes = *req.BreakMinutes
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	saved, err := a.attendanceRepo.MarkClockOut(ctx, *record)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save clock-out: %w", err)
	}

	slog.Info("Employee clocked out", "employee_id", req.EmployeeID, "date", date.Format("2006-01-02"), "total_hours", *saved.TotalHours)

	return attendance.NewAttendanceResponse(saved, a.settings.Location, now), nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (attendance.TodayResponse, error) {
	now := a.now().UTC()
	date := a.today(now)

	record, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	resp := attendance.TodayResponse{
		Date:  date.Format("2006-01-02"),
		Phase: record.Phase().String(),
	}

	var worked time.Duration
	if record != nil {
		worked = attendance.ElapsedWorked(record.ClockIn, record.ClockOut, now)
		rendered := attendance.NewAttendanceResponse(*record, a.settings.Location, now)
		resp.Attendance = &rendered
	}
	resp.Worked = attendance.SplitWorked(worked)
	resp.HoursWorked = attendance.FormatClock(worked)

	return resp, nil
}

// MyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.attendanceRepo.ListRecent(ctx, filter.EmployeeID, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}

	return attendance.NewAttendanceResponses(records, a.settings.Location, a.now().UTC()), nil
}

// MonthlyStats implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyStats(ctx context.Context, req attendance.StatsRequest) (attendance.MonthlyStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyStatsResponse{}, err
	}

	month := attendance.CurrentMonth(a.now(), a.settings.Location)
	if req.Month != "" {
		parsed, err := attendance.ParseMonth(req.Month)
		if err != nil {
			return attendance.MonthlyStatsResponse{}, err
		}
		month = parsed
	}

	records, err := a.attendanceRepo.ListByEmployeeBetween(ctx, req.EmployeeID, month.Start(), month.End())
	if err != nil {
		return attendance.MonthlyStatsResponse{}, fmt.Errorf("failed to get monthly attendance: %w", err)
	}

	stats := attendance.MonthlyStats(records, month)
	return attendance.NewMonthlyStatsResponse(req.EmployeeID, month, stats), nil
}

// TeamAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TeamAttendance(ctx context.Context, filter attendance.TeamFilter) (attendance.TeamAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.TeamAttendanceResponse{}, err
	}

	now := a.now().UTC()
	date := a.today(now)
	if filter.Date != "" {
		date, _ = time.Parse("2006-01-02", filter.Date)
	}

	records, err := a.attendanceRepo.ListByDate(ctx, date, filter.Status)
	if err != nil {
		return attendance.TeamAttendanceResponse{}, fmt.Errorf("failed to get team attendance: %w", err)
	}

	return attendance.TeamAttendanceResponse{
		Date:    date.Format("2006-01-02"),
		Records: attendance.NewAttendanceResponses(records, a.settings.Location, now),
	}, nil
}
