package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// GetByID implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, description, max_days_per_year, requires_approval, created_at
		FROM leave_types
		WHERE id = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.Name, &lt.Description, &lt.MaxDaysPerYear, &lt.RequiresApproval, &lt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type: %w", mapPgError(err))
	}

	return lt, nil
}

// List implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, description, max_days_per_year, requires_approval, created_at
		FROM leave_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", mapPgError(err))
	}
	defer rows.Close()

	types := make([]leave.LeaveType, 0)
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.Description, &lt.MaxDaysPerYear, &lt.RequiresApproval, &lt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}

	return types, rows.Err()
}

// EnsureDefaults implements leave.LeaveTypeRepository.
func (l *leaveTypeRepositoryImpl) EnsureDefaults(ctx context.Context, types []leave.LeaveType) (int, error) {
	query := `
		INSERT INTO leave_types (name, description, max_days_per_year, requires_approval)
		SELECT $1, $2, $3, $4
		WHERE NOT EXISTS (SELECT 1 FROM leave_types WHERE name = $1)
	`

	inserted := 0
	err := WithTransaction(ctx, l.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, l.db)
		for _, lt := range types {
			commandTag, err := q.Exec(txCtx, query, lt.Name, lt.Description, lt.MaxDaysPerYear, lt.RequiresApproval)
			if err != nil {
				return fmt.Errorf("failed to seed leave type %q: %w", lt.Name, mapPgError(err))
			}
			inserted += int(commandTag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
