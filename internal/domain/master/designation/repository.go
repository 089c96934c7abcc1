package designation

import "context"

type DesignationRepository interface {
	Create(ctx context.Context, designation Designation) (Designation, error)
	GetByID(ctx context.Context, id string) (Designation, error)
	List(ctx context.Context) ([]Designation, error)
	Delete(ctx context.Context, id string) error
}
