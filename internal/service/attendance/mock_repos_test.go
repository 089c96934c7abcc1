package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/google/uuid"
)

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.EmployeeID == a.EmployeeID && r.Date.Equal(a.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	m.records[a.ID] = a
	return a, nil
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			return &r, nil
		}
	}
	return nil, nil
}

func (m *mockAttendanceRepo) MarkClockIn(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.records[a.ID]
	if !ok || stored.ClockIn != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	m.records[a.ID] = a
	return a, nil
}

func (m *mockAttendanceRepo) MarkClockOut(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.records[a.ID]
	if !ok || stored.ClockOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}
	m.records[a.ID] = a
	return a, nil
}

func (m *mockAttendanceRepo) filter(keep func(attendance.Attendance) bool) []attendance.Attendance {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]attendance.Attendance, 0)
	for _, r := range m.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (m *mockAttendanceRepo) ListRecent(_ context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	out := m.filter(func(r attendance.Attendance) bool { return r.EmployeeID == employeeID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockAttendanceRepo) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return m.filter(func(r attendance.Attendance) bool {
		return r.EmployeeID == employeeID && !r.Date.Before(from) && !r.Date.After(to)
	}), nil
}

func (m *mockAttendanceRepo) ListByDate(_ context.Context, date time.Time, status *string) ([]attendance.Attendance, error) {
	return m.filter(func(r attendance.Attendance) bool {
		return r.Date.Equal(date) && (status == nil || string(r.Status) == *status)
	}), nil
}

func (m *mockAttendanceRepo) ListBetween(_ context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	return m.filter(func(r attendance.Attendance) bool {
		return !r.Date.Before(from) && !r.Date.After(to)
	}), nil
}

func (m *mockAttendanceRepo) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	out, _ := m.ListBetween(ctx, from, to)
	return int64(len(out)), nil
}

// seed stores a record as-is, bypassing the duplicate check.
func (m *mockAttendanceRepo) seed(a attendance.Attendance) attendance.Attendance {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	m.records[a.ID] = a
	return a
}
