package master

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/designation"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	// Designation operations
	CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error)
	ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error)
	DeleteDesignation(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
	}
}

// isDomainErr reports whether err is one of targets, which are passed through unwrapped.
func isDomainErr(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		if isDomainErr(err, department.ErrDepartmentNameExists) {
			return department.DepartmentResponse{}, err
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	slog.Info("Department created", "department_id", created.ID, "name", created.Name)
	return department.NewDepartmentResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	entity, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if isDomainErr(err, department.ErrDepartmentNotFound) {
			return department.DepartmentResponse{}, err
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}
	return department.NewDepartmentResponse(entity), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.NewDepartmentResponse(d))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	updated, err := s.departmentRepo.Update(ctx, req)
	if err != nil {
		if isDomainErr(err, department.ErrDepartmentNotFound, department.ErrDepartmentNameExists) {
			return department.DepartmentResponse{}, err
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}
	return department.NewDepartmentResponse(updated), nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		if isDomainErr(err, department.ErrDepartmentNotFound, department.ErrDepartmentInUse) {
			return err
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}

	slog.Info("Department deleted", "department_id", id)
	return nil
}

// ==================== DESIGNATION OPERATIONS ====================

func (s *masterServiceImpl) CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}

	created, err := s.designationRepo.Create(ctx, designation.Designation{
		Title:             strings.TrimSpace(req.Title),
		AppraisalTemplate: req.AppraisalTemplate,
	})
	if err != nil {
		if isDomainErr(err, designation.ErrDesignationTitleExists) {
			return designation.DesignationResponse{}, err
		}
		return designation.DesignationResponse{}, fmt.Errorf("failed to create designation: %w", err)
	}

	slog.Info("Designation created", "designation_id", created.ID, "title", created.Title)
	return designation.NewDesignationResponse(created), nil
}

func (s *masterServiceImpl) ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error) {
	designations, err := s.designationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}

	responses := make([]designation.DesignationResponse, 0, len(designations))
	for _, d := range designations {
		responses = append(responses, designation.NewDesignationResponse(d))
	}
	return responses, nil
}

func (s *masterServiceImpl) DeleteDesignation(ctx context.Context, id string) error {
	if err := s.designationRepo.Delete(ctx, id); err != nil {
		if isDomainErr(err, designation.ErrDesignationNotFound, designation.ErrDesignationInUse) {
			return err
		}
		return fmt.Errorf("failed to delete designation: %w", err)
	}

	slog.Info("Designation deleted", "designation_id", id)
	return nil
}
