package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/department"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/master/designation"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity
	case errors.Is(err, jwt.ErrMissingClaims), errors.Is(err, user.ErrInvalidRole):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrNoEmployeeProfile):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidMonth), errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidDateRange):
		UnprocessableEntity(w, "INVALID_DATE_RANGE", "End date must not be before start date")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyResolved):
		Conflict(w, "Leave request already resolved")
	case errors.Is(err, leave.ErrLeaveTypeExists):
		Conflict(w, "Leave type already exists")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department with this name already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has employees assigned")
	case errors.Is(err, designation.ErrDesignationNotFound):
		NotFound(w, "Designation not found")
	case errors.Is(err, designation.ErrDesignationTitleExists):
		Conflict(w, "Designation with this title already exists")
	case errors.Is(err, designation.ErrDesignationInUse):
		Conflict(w, "Designation is still assigned to employees")

	// Infrastructure
	case errors.Is(err, database.ErrSetupRequired):
		ServiceUnavailable(w, "SETUP_REQUIRED", "Database not initialized")
	case errors.Is(err, report.ErrReportGenerationFailed):
		slog.Error("Report generation failed", "error", err)
		InternalServerError(w, "Failed to generate report")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
