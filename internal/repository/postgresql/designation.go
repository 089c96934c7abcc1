package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/designation"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepositoryImpl{db: db}
}

// Create implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Create(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO designations (title, appraisal_template)
		VALUES ($1, $2)
		RETURNING id, title, appraisal_template, created_at
	`

	var result designation.Designation
	err := q.QueryRow(ctx, query, d.Title, d.AppraisalTemplate).Scan(
		&result.ID,
		&result.Title,
		&result.AppraisalTemplate,
		&result.CreatedAt,
	)
	if err != nil {
		if isPgCode(err, pgUniqueViolation) {
			return designation.Designation{}, designation.ErrDesignationTitleExists
		}
		return designation.Designation{}, fmt.Errorf("failed to create designation: %w", mapPgError(err))
	}

	return result, nil
}

// GetByID implements designation.DesignationRepository.
func (r *designationRepositoryImpl) GetByID(ctx context.Context, id string) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, appraisal_template, created_at
		FROM designations
		WHERE id = $1
	`

	var result designation.Designation
	err := q.QueryRow(ctx, query, id).Scan(&result.ID, &result.Title, &result.AppraisalTemplate, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return designation.Designation{}, designation.ErrDesignationNotFound
		}
		return designation.Designation{}, fmt.Errorf("failed to get designation: %w", mapPgError(err))
	}

	return result, nil
}

// List implements designation.DesignationRepository.
func (r *designationRepositoryImpl) List(ctx context.Context) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, title, appraisal_template, created_at FROM designations ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", mapPgError(err))
	}
	defer rows.Close()

	designations := make([]designation.Designation, 0)
	for rows.Next() {
		var d designation.Designation
		if err := rows.Scan(&d.ID, &d.Title, &d.AppraisalTemplate, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan designation: %w", err)
		}
		designations = append(designations, d)
	}

	return designations, rows.Err()
}

// Delete implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		if isPgCode(err, pgForeignKeyViolation) {
			return designation.ErrDesignationInUse
		}
		return fmt.Errorf("failed to delete designation: %w", mapPgError(err))
	}
	if commandTag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}

	return nil
}
