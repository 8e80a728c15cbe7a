package response

import (
	"errors"
	"net/http"

	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/overtime"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
	"github.com/hrsaas/timesheet-backend/internal/pkg/validator"
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
	// Auth errors
	case errors.Is(err, jwt.ErrInvalidToken), errors.Is(err, jwt.ErrMissingClaims):
		Unauthorized(w, jwt.ErrInvalidToken.Error())
	case errors.Is(err, user.ErrCompanyIDRequired):
		Forbidden(w, "Company membership required")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "Not allowed to access this user")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrAttendanceConfigMissing):
		BadRequest(w, "Company attendance config is not set", nil)
	case errors.Is(err, company.ErrInvalidAttendanceConfig):
		BadRequest(w, err.Error(), nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrMalformedTime):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Invalid year or month", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in yet", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrComplaintNotFound):
		NotFound(w, "Complaint not found")
	case errors.Is(err, attendance.ErrComplaintExists):
		Conflict(w, "A pending complaint already exists for this date and action")
	case errors.Is(err, attendance.ErrComplaintAlreadyProcessed):
		Conflict(w, "Complaint already processed")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientQuota):
		BadRequest(w, "Insufficient leave quota", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrNoWorkingDays),
		errors.Is(err, leave.ErrHalfDayNotAllowed):
		BadRequest(w, err.Error(), nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime log not found")
	case errors.Is(err, overtime.ErrDuplicateOvertime):
		Conflict(w, "An overtime log already exists for this date")
	case errors.Is(err, overtime.ErrOvertimeAlreadyProcessed):
		Conflict(w, "Overtime log already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
