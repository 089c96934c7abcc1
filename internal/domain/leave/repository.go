package leave

import (
	"context"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)

	// EnsureDefaults inserts any of types not already present by name, in one transaction.
	// It returns how many rows were inserted.
	EnsureDefaults(ctx context.Context, types []LeaveType) (int, error)
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	// Resolve persists a decision only while the stored request is still pending.
	// A request resolved concurrently yields ErrLeaveRequestAlreadyResolved.
	Resolve(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	CountByStatus(ctx context.Context, status Status) (int64, error)
}
