package leave

import (
	"context"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
)

type LeaveService interface {
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)

	// SeedDefaultLeaveTypes upserts DefaultLeaveTypes by name.
	SeedDefaultLeaveTypes(ctx context.Context) (int, error)

	Balances(ctx context.Context, req BalancesRequest) (BalancesResponse, error)

	// CreateRequest files a pending request with days_requested computed from the dates
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// GetRequest returns a request the principal owns, or any request with leave.view_all
	GetRequest(ctx context.Context, principal user.Principal, id string) (LeaveRequestResponse, error)

	ListRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)

	// Decide approves or rejects a pending request
	Decide(ctx context.Context, req DecisionRequest) (LeaveRequestResponse, error)
}
