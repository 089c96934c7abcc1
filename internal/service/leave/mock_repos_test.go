package leave

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/google/uuid"
)

// ── Mock LeaveTypeRepository ──

type mockLeaveTypeRepo struct {
	types []leave.LeaveType
}

func newMockLeaveTypeRepo() *mockLeaveTypeRepo {
	return &mockLeaveTypeRepo{}
}

func (m *mockLeaveTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	for _, lt := range m.types {
		if lt.ID == id {
			return lt, nil
		}
	}
	return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
}

func (m *mockLeaveTypeRepo) List(_ context.Context) ([]leave.LeaveType, error) {
	return m.types, nil
}

func (m *mockLeaveTypeRepo) EnsureDefaults(_ context.Context, types []leave.LeaveType) (int, error) {
	inserted := 0
	for _, lt := range types {
		exists := false
		for _, existing := range m.types {
			if existing.Name == lt.Name {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		lt.ID = uuid.NewString()
		m.types = append(m.types, lt)
		inserted++
	}
	return inserted, nil
}

// ── Mock LeaveRequestRepository ──

type mockLeaveRequestRepo struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
}

func newMockLeaveRequestRepo() *mockLeaveRequestRepo {
	return &mockLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (m *mockLeaveRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	request.ID = uuid.NewString()
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	m.requests[request.ID] = request
	return request, nil
}

func (m *mockLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r, nil
}

func (m *mockLeaveRequestRepo) List(_ context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]leave.LeaveRequest, 0)
	for _, r := range m.requests {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (m *mockLeaveRequestRepo) Resolve(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.requests[request.ID]
	if !ok || !stored.IsPending() {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyResolved
	}
	m.requests[request.ID] = request
	return request, nil
}

func (m *mockLeaveRequestRepo) CountByStatus(_ context.Context, status leave.Status) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, r := range m.requests {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}
