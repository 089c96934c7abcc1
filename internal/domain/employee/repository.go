package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// ListActive returns every active employee, used for reports.
	ListActive(ctx context.Context) ([]Employee, error)

	// Counts
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status EmploymentStatus) (int64, error)
	CountByEmploymentType(ctx context.Context) (map[EmploymentType]int64, error)
}
