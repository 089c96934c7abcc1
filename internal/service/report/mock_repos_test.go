package report

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/department"
)

// The report service only reads; writes on these mocks are never called.

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (m *mockEmployeeRepo) GetByID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) GetByUserID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	m.employees = append(m.employees, e)
	return e, nil
}

func (m *mockEmployeeRepo) List(context.Context, employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return m.employees, int64(len(m.employees)), m.err
}

func (m *mockEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0)
	for _, e := range m.employees {
		if e.Status == employee.EmploymentStatusActive {
			out = append(out, e)
		}
	}
	return out, m.err
}

func (m *mockEmployeeRepo) CountAll(context.Context) (int64, error) {
	return int64(len(m.employees)), m.err
}

func (m *mockEmployeeRepo) CountByStatus(_ context.Context, status employee.EmploymentStatus) (int64, error) {
	var n int64
	for _, e := range m.employees {
		if e.Status == status {
			n++
		}
	}
	return n, m.err
}

func (m *mockEmployeeRepo) CountByEmploymentType(context.Context) (map[employee.EmploymentType]int64, error) {
	counts := make(map[employee.EmploymentType]int64)
	for _, e := range m.employees {
		counts[e.EmploymentType]++
	}
	return counts, m.err
}

// ── Mock LeaveRequestRepository ──

type mockLeaveRequestRepo struct {
	pending int64
}

func (m *mockLeaveRequestRepo) Create(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	return r, nil
}

func (m *mockLeaveRequestRepo) GetByID(context.Context, string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (m *mockLeaveRequestRepo) List(context.Context, leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (m *mockLeaveRequestRepo) Resolve(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	return r, nil
}

func (m *mockLeaveRequestRepo) CountByStatus(_ context.Context, status leave.Status) (int64, error) {
	if status == leave.StatusPending {
		return m.pending, nil
	}
	return 0, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records []attendance.Attendance
}

func (m *mockAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(context.Context, string, time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) MarkClockIn(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (m *mockAttendanceRepo) MarkClockOut(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (m *mockAttendanceRepo) ListRecent(context.Context, string, int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) ListByEmployeeBetween(context.Context, string, time.Time, time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) ListByDate(context.Context, time.Time, *string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) ListBetween(_ context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	out := make([]attendance.Attendance, 0)
	for _, r := range m.records {
		if !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	out, _ := m.ListBetween(ctx, from, to)
	return int64(len(out)), nil
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	departments []department.Department
}

func (m *mockDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	return d, nil
}

func (m *mockDepartmentRepo) GetByID(context.Context, string) (department.Department, error) {
	return department.Department{}, department.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) GetByName(context.Context, string) (department.Department, error) {
	return department.Department{}, department.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) List(context.Context) ([]department.Department, error) {
	return m.departments, nil
}

func (m *mockDepartmentRepo) Update(context.Context, department.UpdateDepartmentRequest) (department.Department, error) {
	return department.Department{}, department.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) Delete(context.Context, string) error {
	return department.ErrDepartmentNotFound
}
