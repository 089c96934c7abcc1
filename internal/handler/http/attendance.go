package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Team(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	_, employeeID, err := ownEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.ClockInRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		slog.Error("Failed to decode clock-in request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	_, employeeID, err := ownEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.ClockOutRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		slog.Error("Failed to decode clock-out request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	_, employeeID, err := ownEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Today(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	_, employeeID, err := ownEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.MyAttendanceFilter{
		EmployeeID: employeeID,
		Limit:      queryInt(r, "limit"),
	}

	results, err := h.attendanceService.MyAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Stats implements AttendanceHandler. Another employee's stats need attendance.view_team.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	principal, ownID, err := ownEmployeeID(r)
	target := r.URL.Query().Get("employee_id")

	switch {
	case target == "" && err != nil:
		response.HandleError(w, err)
		return
	case target == "":
		target = ownID
	case target != ownID && !principal.Can(user.PermissionAttendanceViewTeam):
		response.HandleError(w, user.ErrInsufficientPermissions)
		return
	}

	req := attendance.StatsRequest{
		EmployeeID: target,
		Month:      r.URL.Query().Get("month"),
	}

	result, err := h.attendanceService.MonthlyStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Team implements AttendanceHandler.
func (h *attendanceHandlerImpl) Team(w http.ResponseWriter, r *http.Request) {
	filter := attendance.TeamFilter{
		Date:   r.URL.Query().Get("date"),
		Status: queryString(r, "status"),
	}

	result, err := h.attendanceService.TeamAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
