package leave

import "errors"

var (
	ErrLeaveRequestNotFound        = errors.New("leave request not found")
	ErrLeaveTypeNotFound           = errors.New("leave type not found")
	ErrLeaveTypeExists             = errors.New("leave type already exists")
	ErrInvalidDateRange            = errors.New("invalid date range")
	ErrLeaveRequestAlreadyResolved = errors.New("request already resolved")
	ErrInvalidDecision             = errors.New("decision must be approve or reject")
)
