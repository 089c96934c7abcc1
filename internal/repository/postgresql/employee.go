package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.profile_id, e.employee_id, e.first_name, e.middle_name, e.last_name,
	e.email, e.phone, e.address, e.date_of_birth, e.hire_date, e.job_title,
	e.department_id, e.designation_id, e.salary, e.employment_type, e.status, e.gender,
	e.created_at, e.updated_at,
	d.name AS department_name,
	ds.title AS designation_title`

const employeeFrom = `
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN designations ds ON ds.id = e.designation_id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.EmployeeNumber, &emp.FirstName, &emp.MiddleName, &emp.LastName,
		&emp.Email, &emp.Phone, &emp.Address, &emp.DateOfBirth, &emp.HireDate, &emp.JobTitle,
		&emp.DepartmentID, &emp.DesignationID, &emp.Salary, &emp.EmploymentType, &emp.Status, &emp.Gender,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName, &emp.DesignationTitle,
	)
	return emp, err
}

func (e *employeeRepositoryImpl) getOne(ctx context.Context, where string, arg any) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+employeeFrom+` WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", mapPgError(err))
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return e.getOne(ctx, "e.id = $1", id)
}

// GetByUserID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return e.getOne(ctx, "e.profile_id = $1", userID)
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			profile_id, employee_id, first_name, middle_name, last_name,
			email, phone, address, date_of_birth, hire_date, job_title,
			department_id, designation_id, salary, employment_type, status, gender
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.EmployeeNumber,
		newEmployee.FirstName,
		newEmployee.MiddleName,
		newEmployee.LastName,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.Address,
		newEmployee.DateOfBirth,
		newEmployee.HireDate,
		newEmployee.JobTitle,
		newEmployee.DepartmentID,
		newEmployee.DesignationID,
		newEmployee.Salary,
		newEmployee.EmploymentType,
		newEmployee.Status,
		newEmployee.Gender,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			switch {
			case strings.Contains(pgErr.ConstraintName, "email"):
				return employee.Employee{}, employee.ErrEmailExists
			default:
				return employee.Employee{}, employee.ErrEmployeeNumberExists
			}
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", mapPgError(err))
	}

	return newEmployee, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE conditions
	conditions := []string{"TRUE"}
	args := []any{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(concat_ws(' ', e.first_name, e.middle_name, e.last_name) ILIKE $%d OR e.employee_id ILIKE $%d OR e.email ILIKE $%d)",
			argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	var total int64
	err := q.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM employees e WHERE %s", whereClause), args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", mapPgError(err))
	}

	// Validate sort column
	validSortColumns := map[string]string{
		"name":            "e.first_name",
		"employee_number": "e.employee_id",
		"hire_date":       "e.hire_date",
	}
	sortColumn, ok := validSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "e.first_name"
	}

	sortOrder := "ASC"
	if strings.ToUpper(filter.SortOrder) == "DESC" {
		sortOrder = "DESC"
	}

	// Main query with pagination
	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`SELECT %s %s
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, employeeColumns, employeeFrom, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", mapPgError(err))
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + employeeFrom + `
		WHERE e.status = 'active'
		ORDER BY e.employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", mapPgError(err))
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// CountAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", mapPgError(err))
	}
	return count, nil
}

// CountByStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountByStatus(ctx context.Context, status employee.EmploymentStatus) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees by status: %w", mapPgError(err))
	}
	return count, nil
}

// CountByEmploymentType implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountByEmploymentType(ctx context.Context) (map[employee.EmploymentType]int64, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT employment_type, COUNT(*) FROM employees GROUP BY employment_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by type: %w", mapPgError(err))
	}
	defer rows.Close()

	counts := make(map[employee.EmploymentType]int64)
	for rows.Next() {
		var (
			empType employee.EmploymentType
			count   int64
		)
		if err := rows.Scan(&empType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan employment type count: %w", err)
		}
		counts[empType] = count
	}

	return counts, rows.Err()
}
