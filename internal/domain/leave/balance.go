package leave

import (
	"time"
)

// DaySpan is the number of calendar days from start to end, both inclusive.
// Time of day is ignored; each value is read as a date in its own location.
func DaySpan(start, end time.Time) (int, error) {
	s, e := calendarDate(start), calendarDate(end)
	if e.Before(s) {
		return 0, ErrInvalidDateRange
	}
	return int(e.Sub(s)/(24*time.Hour)) + 1, nil
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// UsedDays sums the stored day counts of approved requests of one leave type
// whose start date falls in year. A request spanning new year counts entirely
// toward the year it starts in.
func UsedDays(leaveTypeID string, requests []LeaveRequest, year int) int {
	used := 0
	for _, r := range requests {
		if r.Status != StatusApproved || r.LeaveTypeID != leaveTypeID {
			continue
		}
		if r.StartDate.Year() != year {
			continue
		}
		used += r.DaysRequested
	}
	return used
}

// RemainingBalance is the entitlement left for year. It goes negative when
// approvals exceed the entitlement; callers decide how to present that.
func RemainingBalance(leaveType LeaveType, approved []LeaveRequest, year int) int {
	return leaveType.MaxDaysPerYear - UsedDays(leaveType.ID, approved, year)
}

// ApplyDecision resolves a pending request. Any other status is terminal and
// returns ErrLeaveRequestAlreadyResolved with the request unchanged.
func ApplyDecision(request LeaveRequest, decision Decision, approverID string, comments *string, at time.Time) (LeaveRequest, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return request, ErrInvalidDecision
	}
	if !request.IsPending() {
		return request, ErrLeaveRequestAlreadyResolved
	}

	resolved := request
	resolved.Status = decision.Status()
	resolved.ApprovedBy = &approverID
	resolved.ApprovedAt = &at
	if comments != nil {
		resolved.Comments = comments
	}
	return resolved, nil
}

// Balance is one leave type's standing for a year.
type Balance struct {
	LeaveType   LeaveType
	Entitlement int
	Used        int
	Remaining   int
}

// Balances computes a Balance per leave type, in the order the types are given.
func Balances(types []LeaveType, requests []LeaveRequest, year int) []Balance {
	out := make([]Balance, 0, len(types))
	for _, lt := range types {
		used := UsedDays(lt.ID, requests, year)
		out = append(out, Balance{
			LeaveType:   lt,
			Entitlement: lt.MaxDaysPerYear,
			Used:        used,
			Remaining:   lt.MaxDaysPerYear - used,
		})
	}
	return out
}

// Summary counts an employee's requests starting in a year.
type Summary struct {
	DaysUsed int
	Pending  int
	Approved int
	Rejected int
}

func Summarize(requests []LeaveRequest, year int) Summary {
	var s Summary
	for _, r := range requests {
		if r.StartDate.Year() != year {
			continue
		}
		switch r.Status {
		case StatusPending:
			s.Pending++
		case StatusApproved:
			s.Approved++
			s.DaysUsed += r.DaysRequested
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}
