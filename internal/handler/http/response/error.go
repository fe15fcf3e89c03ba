package response

import (
	"errors"
	"net/http"

	"github.com/timecardhq/timecard-backend-go/internal/domain/auth"
	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
	"github.com/timecardhq/timecard-backend-go/internal/domain/schedule"
	"github.com/timecardhq/timecard-backend-go/internal/domain/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Administrator access required")
	case errors.Is(err, user.ErrUnknownBulkAction):
		BadRequest(w, "Unknown bulk action", nil)

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, timeentry.ErrNotClockedIn):
		Conflict(w, "Not clocked in")
	case errors.Is(err, timeentry.ErrLunchAlreadyOpen):
		Conflict(w, "Lunch break already started")
	case errors.Is(err, timeentry.ErrLunchNotStarted):
		Conflict(w, "Lunch break not started")
	case errors.Is(err, timeentry.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrEntryNotEditable):
		Conflict(w, "Time entry is still open")
	case errors.Is(err, timeentry.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out must not be before clock-in", nil)
	case errors.Is(err, timeentry.ErrUnauthorizedAccess):
		Forbidden(w, "Not allowed to access this entry")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrScheduleConflict):
		Conflict(w, "Shift conflicts with an existing schedule")
	case errors.Is(err, schedule.ErrInvalidInterval):
		BadRequest(w, "Shift end must be after shift start", nil)

	// Report domain errors
	case errors.Is(err, report.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format", nil)
	case errors.Is(err, report.ErrUnsupportedReport):
		BadRequest(w, "Unsupported report type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
