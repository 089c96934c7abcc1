package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	now func() time.Time
}

func NewLeaveService(leaveTypeRepository leave.LeaveTypeRepository, leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		now:                    time.Now,
	}
}

// ListLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := l.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, leave.NewLeaveTypeResponse(lt))
	}
	return responses, nil
}

// SeedDefaultLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) SeedDefaultLeaveTypes(ctx context.Context) (int, error) {
	inserted, err := l.LeaveTypeRepository.EnsureDefaults(ctx, leave.DefaultLeaveTypes())
	if err != nil {
		return 0, fmt.Errorf("failed to seed leave types: %w", err)
	}
	if inserted > 0 {
		slog.Info("Seeded default leave types", "inserted", inserted)
	}
	return inserted, nil
}

// Balances implements leave.LeaveService.
func (l *LeaveServiceImpl) Balances(ctx context.Context, req leave.BalancesRequest) (leave.BalancesResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BalancesResponse{}, err
	}
	if req.Year == 0 {
		req.Year = l.now().Year()
	}

	types, err := l.LeaveTypeRepository.List(ctx)
	if err != nil {
		return leave.BalancesResponse{}, fmt.Errorf("failed to list leave types: %w", err)
	}

	requests, err := l.LeaveRequestRepository.List(ctx, leave.LeaveRequestFilter{EmployeeID: &req.EmployeeID})
	if err != nil {
		return leave.BalancesResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	balances := leave.Balances(types, requests, req.Year)
	summary := leave.Summarize(requests, req.Year)

	return leave.NewBalancesResponse(req.EmployeeID, req.Year, balances, summary), nil
}

// CreateRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, end := req.Dates()
	days, err := leave.DaySpan(start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := l.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID); err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:    req.EmployeeID,
		LeaveTypeID:   req.LeaveTypeID,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: days,
		Reason:        req.Reason,
		Status:        leave.StatusPending,
	})
	if err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request created", "request_id", created.ID, "employee_id", created.EmployeeID, "days", days)

	return leave.NewLeaveRequestResponse(created), nil
}

// GetRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetRequest(ctx context.Context, principal user.Principal, id string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	// Employees only see their own requests
	if !principal.Can(user.PermissionLeaveViewAll) {
		if !principal.HasEmployee() || *principal.EmployeeID != request.EmployeeID {
			return leave.LeaveRequestResponse{}, user.ErrInsufficientPermissions
		}
	}

	return leave.NewLeaveRequestResponse(request), nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return leave.NewLeaveRequestResponses(requests), nil
}

// Decide implements leave.LeaveService.
func (l *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecisionRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	resolved, err := leave.ApplyDecision(request, req.Decision, req.ApproverID, req.Comments, l.now().UTC())
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	saved, err := l.LeaveRequestRepository.Resolve(ctx, resolved)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestAlreadyResolved) || errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to resolve leave request: %w", err)
	}

	slog.Info("Leave request resolved", "request_id", saved.ID, "status", saved.Status, "approved_by", req.ApproverID)

	return leave.NewLeaveRequestResponse(saved), nil
}
