package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID               string
	Name             string
	Description      *string
	MaxDaysPerYear   int
	RequiresApproval bool
	CreatedAt        time.Time
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var Statuses = []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}

// Decision is the approver's verdict on a pending request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Status is the request status a decision moves to.
func (d Decision) Status() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// LeaveRequest entity
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	Reason        string
	Status        Status

	ApprovedBy *string
	ApprovedAt *time.Time
	Comments   *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	LeaveTypeName *string
	EmployeeName  *string
}

// IsPending reports whether the request still awaits a decision.
func (r LeaveRequest) IsPending() bool {
	return r.Status == StatusPending
}

// DefaultLeaveTypes is the reference set seeded into a fresh database.
func DefaultLeaveTypes() []LeaveType {
	describe := func(s string) *string { return &s }
	return []LeaveType{
		{Name: "Annual Leave", Description: describe("Yearly paid vacation"), MaxDaysPerYear: 21, RequiresApproval: true},
		{Name: "Sick Leave", Description: describe("Medical leave"), MaxDaysPerYear: 10, RequiresApproval: false},
		{Name: "Personal Leave", Description: describe("Personal time off"), MaxDaysPerYear: 5, RequiresApproval: true},
		{Name: "Maternity Leave", Description: describe("Maternity leave"), MaxDaysPerYear: 90, RequiresApproval: true},
		{Name: "Paternity Leave", Description: describe("Paternity leave"), MaxDaysPerYear: 14, RequiresApproval: true},
		{Name: "Unpaid Leave", Description: describe("Unpaid time off"), MaxDaysPerYear: 0, RequiresApproval: true},
	}
}
