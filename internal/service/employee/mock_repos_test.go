package employee

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/department"
	"github.com/google/uuid"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees   map[string]employee.Employee
	departments *mockDepartmentRepo
}

func newMockEmployeeRepo(departments *mockDepartmentRepo) *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]employee.Employee), departments: departments}
}

func (m *mockEmployeeRepo) join(e employee.Employee) employee.Employee {
	if e.DepartmentID != nil {
		if d, ok := m.departments.departments[*e.DepartmentID]; ok {
			name := d.Name
			e.DepartmentName = &name
		}
	}
	return e
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return m.join(e), nil
}

func (m *mockEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.UserID != nil && *e.UserID == userID {
			return m.join(e), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.EmployeeNumber == newEmployee.EmployeeNumber {
			return employee.Employee{}, employee.ErrEmployeeNumberExists
		}
	}
	newEmployee.ID = uuid.NewString()
	newEmployee.CreatedAt = time.Now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	m.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (m *mockEmployeeRepo) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	matched := make([]employee.Employee, 0)
	for _, e := range m.employees {
		if filter.Search != nil && !strings.Contains(strings.ToLower(e.FullName()), strings.ToLower(*filter.Search)) {
			continue
		}
		if filter.DepartmentID != nil && (e.DepartmentID == nil || *e.DepartmentID != *filter.DepartmentID) {
			continue
		}
		if filter.Status != nil && string(e.Status) != *filter.Status {
			continue
		}
		matched = append(matched, m.join(e))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].EmployeeNumber < matched[j].EmployeeNumber })

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset > len(matched) {
		offset = len(matched)
	}
	end := min(offset+filter.Limit, len(matched))
	return matched[offset:end], total, nil
}

func (m *mockEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0)
	for _, e := range m.employees {
		if e.Status == employee.EmploymentStatusActive {
			out = append(out, m.join(e))
		}
	}
	return out, nil
}

func (m *mockEmployeeRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}

func (m *mockEmployeeRepo) CountByStatus(_ context.Context, status employee.EmploymentStatus) (int64, error) {
	var n int64
	for _, e := range m.employees {
		if e.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockEmployeeRepo) CountByEmploymentType(_ context.Context) (map[employee.EmploymentType]int64, error) {
	counts := make(map[employee.EmploymentType]int64)
	for _, e := range m.employees {
		counts[e.EmploymentType]++
	}
	return counts, nil
}

// ── Mock DepartmentRepository ──

var errLookupDown = errors.New("connection reset")

type mockDepartmentRepo struct {
	departments map[string]department.Department
	failLookups bool
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[string]department.Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	d.ID = uuid.NewString()
	d.CreatedAt = time.Now()
	m.departments[d.ID] = d
	return d, nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	d, ok := m.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (m *mockDepartmentRepo) GetByName(_ context.Context, name string) (department.Department, error) {
	if m.failLookups {
		return department.Department{}, errLookupDown
	}
	for _, d := range m.departments {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]department.Department, error) {
	out := make([]department.Department, 0, len(m.departments))
	for _, d := range m.departments {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, req department.UpdateDepartmentRequest) (department.Department, error) {
	d, ok := m.departments[req.ID]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	m.departments[d.ID] = d
	return d, nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	delete(m.departments, id)
	return nil
}
