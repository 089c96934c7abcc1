package leave

import (
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

const missingDisplay = "-"

type CreateLeaveRequestRequest struct {
	EmployeeID  string `json:"-"`
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD
	Reason      string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if !validator.IsValidUUID(r.LeaveTypeID) {
		errs.Add("leave_type_id", "leave_type_id must be a valid UUID")
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}
	if len(r.Reason) > 1000 {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	return errs.OrNil()
}

// Dates returns the parsed start and end. Call after Validate.
func (r *CreateLeaveRequestRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type DecisionRequest struct {
	RequestID  string   `json:"-"`
	ApproverID string   `json:"-"`
	Decision   Decision `json:"-"`
	Comments   *string  `json:"comments,omitempty"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.RequestID) {
		errs.Add("id", "id must be a valid UUID")
	}
	if validator.IsEmpty(r.ApproverID) {
		errs.Add("approver_id", "approver_id is required")
	}
	if r.Decision != DecisionApprove && r.Decision != DecisionReject {
		errs.Add("decision", "decision must be approve or reject")
	}
	if r.Comments != nil && len(*r.Comments) > 1000 {
		errs.Add("comments", "comments must not exceed 1000 characters")
	}

	return errs.OrNil()
}

type LeaveRequestFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, Statuses) {
		errs.Add("status", "status must be one of pending, approved, rejected")
	}

	return errs.OrNil()
}

type BalancesRequest struct {
	EmployeeID string `json:"-"`
	Year       int    `json:"year"` // defaults to the current year
}

func (r *BalancesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Year != 0 && (r.Year < 1970 || r.Year > 9999) {
		errs.Add("year", "year is out of range")
	}

	return errs.OrNil()
}

type LeaveTypeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	MaxDaysPerYear   int     `json:"max_days_per_year"`
	RequiresApproval bool    `json:"requires_approval"`
}

func NewLeaveTypeResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:               lt.ID,
		Name:             lt.Name,
		Description:      lt.Description,
		MaxDaysPerYear:   lt.MaxDaysPerYear,
		RequiresApproval: lt.RequiresApproval,
	}
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysRequested int     `json:"days_requested"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
	Comments      *string `json:"comments,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  stringOr(r.EmployeeName, missingDisplay),
		LeaveTypeID:   r.LeaveTypeID,
		LeaveTypeName: stringOr(r.LeaveTypeName, missingDisplay),
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		DaysRequested: r.DaysRequested,
		Reason:        r.Reason,
		Status:        string(r.Status),
		ApprovedBy:    r.ApprovedBy,
		Comments:      r.Comments,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.ApprovedAt != nil {
		approvedAt := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewLeaveRequestResponse(r))
	}
	return out
}

type BalanceResponse struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	Entitlement   int    `json:"entitlement"`
	Used          int    `json:"used"`
	Remaining     int    `json:"remaining"`
}

type SummaryResponse struct {
	DaysUsed int `json:"days_used"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type BalancesResponse struct {
	EmployeeID string            `json:"employee_id"`
	Year       int               `json:"year"`
	Balances   []BalanceResponse `json:"balances"`
	Summary    SummaryResponse   `json:"summary"`
}

func NewBalancesResponse(employeeID string, year int, balances []Balance, summary Summary) BalancesResponse {
	resp := BalancesResponse{
		EmployeeID: employeeID,
		Year:       year,
		Balances:   make([]BalanceResponse, 0, len(balances)),
		Summary: SummaryResponse{
			DaysUsed: summary.DaysUsed,
			Pending:  summary.Pending,
			Approved: summary.Approved,
			Rejected: summary.Rejected,
		},
	}
	for _, b := range balances {
		resp.Balances = append(resp.Balances, BalanceResponse{
			LeaveTypeID:   b.LeaveType.ID,
			LeaveTypeName: b.LeaveType.Name,
			Entitlement:   b.Entitlement,
			Used:          b.Used,
			Remaining:     b.Remaining,
		})
	}
	return resp
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
