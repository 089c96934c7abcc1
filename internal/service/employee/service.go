package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/department"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	now            func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, departmentRepo department.DepartmentRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		now:            time.Now,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	newEmployee := employee.Employee{
		UserID:         req.UserID,
		FirstName:      strings.TrimSpace(req.FirstName),
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		HireDate:       hireDate,
		JobTitle:       employee.DefaultJobTitle,
		DesignationID:  req.DesignationID,
		Salary:         req.Salary,
		EmploymentType: employee.EmploymentType(req.EmploymentType),
		Status:         employee.EmploymentStatus(req.Status),
	}

	if req.EmployeeNumber != nil && strings.TrimSpace(*req.EmployeeNumber) != "" {
		newEmployee.EmployeeNumber = strings.TrimSpace(*req.EmployeeNumber)
	} else {
		series := employee.DefaultSeries
		if req.Series != nil && *req.Series != "" {
			series = *req.Series
		}
		newEmployee.EmployeeNumber = employee.GenerateEmployeeNumber(series, s.now())
	}

	if req.JobTitle != nil && strings.TrimSpace(*req.JobTitle) != "" {
		newEmployee.JobTitle = strings.TrimSpace(*req.JobTitle)
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		newEmployee.DateOfBirth = &dob
	}
	if req.Gender != nil {
		gender := employee.Gender(strings.ToLower(*req.Gender))
		newEmployee.Gender = &gender
	}

	departmentID, err := s.resolveDepartment(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	newEmployee.DepartmentID = departmentID

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNumberExists) || errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "employee_id", created.ID, "employee_number", created.EmployeeNumber)

	// Re-read to pick up the joined department and designation names
	full, err := s.employeeRepo.GetByID(ctx, created.ID)
	if err != nil {
		return employee.NewEmployeeResponse(created), nil
	}
	return employee.NewEmployeeResponse(full), nil
}

// resolveDepartment picks the department for a new employee. An explicit ID must exist;
// a department name that cannot be found leaves the employee unassigned.
func (s *EmployeeServiceImpl) resolveDepartment(ctx context.Context, req employee.CreateEmployeeRequest) (*string, error) {
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		dept, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to get department: %w", err)
		}
		return &dept.ID, nil
	}

	if req.Department == nil || strings.TrimSpace(*req.Department) == "" {
		return nil, nil
	}

	name := strings.TrimSpace(*req.Department)
	dept, err := s.departmentRepo.GetByName(ctx, name)
	if err != nil {
		slog.Warn("Department lookup failed, employee left unassigned", "department", name, "error", fmt.Errorf("%w: %w", employee.ErrDepartmentLookupFailed, err))
		return nil, nil
	}
	return &dept.ID, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Employees:  responses,
	}, nil
}
