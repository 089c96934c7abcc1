package master

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/designation"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDepartmentRepo struct {
	departments map[string]department.Department
	inUse       map[string]bool
}

func (m *mockDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	for _, existing := range m.departments {
		if strings.EqualFold(existing.Name, d.Name) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
	}
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
	for _, d := range m.departments {
		if d.Name == name {
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
	if req.Description != nil {
		d.Description = req.Description
	}
	m.departments[d.ID] = d
	return d, nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	if m.inUse[id] {
		return department.ErrDepartmentInUse
	}
	delete(m.departments, id)
	return nil
}

type mockDesignationRepo struct {
	designations map[string]designation.Designation
	listErr      error
}

func (m *mockDesignationRepo) Create(_ context.Context, d designation.Designation) (designation.Designation, error) {
	d.ID = uuid.NewString()
	m.designations[d.ID] = d
	return d, nil
}

func (m *mockDesignationRepo) GetByID(_ context.Context, id string) (designation.Designation, error) {
	d, ok := m.designations[id]
	if !ok {
		return designation.Designation{}, designation.ErrDesignationNotFound
	}
	return d, nil
}

func (m *mockDesignationRepo) List(_ context.Context) ([]designation.Designation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]designation.Designation, 0, len(m.designations))
	for _, d := range m.designations {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDesignationRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.designations[id]; !ok {
		return designation.ErrDesignationNotFound
	}
	delete(m.designations, id)
	return nil
}

func newTestService() (MasterService, *mockDepartmentRepo, *mockDesignationRepo) {
	depts := &mockDepartmentRepo{departments: map[string]department.Department{}, inUse: map[string]bool{}}
	titles := &mockDesignationRepo{designations: map[string]designation.Designation{}}
	return NewMasterService(depts, titles), depts, titles
}

func TestDepartmentLifecycle(t *testing.T) {
	svc, depts, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "  Engineering "})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", created.Name)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)

	_, err = svc.CreateDepartment(ctx, department.CreateDepartmentRequest{})
	assert.Error(t, err)

	desc := "Builds things"
	updated, err := svc.UpdateDepartment(ctx, department.UpdateDepartmentRequest{ID: created.ID, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Builds things", *updated.Description)

	got, err := svc.GetDepartment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineering", got.Name)

	depts.inUse[created.ID] = true
	assert.ErrorIs(t, svc.DeleteDepartment(ctx, created.ID), department.ErrDepartmentInUse)

	depts.inUse[created.ID] = false
	require.NoError(t, svc.DeleteDepartment(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteDepartment(ctx, created.ID), department.ErrDepartmentNotFound)

	list, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDesignations(t *testing.T) {
	svc, _, titles := newTestService()
	ctx := context.Background()

	template := "engineering-v1"
	created, err := svc.CreateDesignation(ctx, designation.CreateDesignationRequest{Title: "Software Engineer", AppraisalTemplate: &template})
	require.NoError(t, err)
	assert.Equal(t, "engineering-v1", *created.AppraisalTemplate)

	list, err := svc.ListDesignations(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteDesignation(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteDesignation(ctx, created.ID), designation.ErrDesignationNotFound)

	titles.listErr = database.ErrSetupRequired
	_, err = svc.ListDesignations(ctx)
	assert.ErrorIs(t, err, database.ErrSetupRequired)
	assert.False(t, errors.Is(err, designation.ErrDesignationNotFound))
}
