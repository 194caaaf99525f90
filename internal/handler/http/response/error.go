package response

import (
	"errors"
	"net/http"

	"github.com/worklogix/attendance-backend-go/internal/domain/auth"
	"github.com/worklogix/attendance-backend-go/internal/domain/user"
	"github.com/worklogix/attendance-backend-go/internal/domain/work"
	"github.com/worklogix/attendance-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Work domain errors
	case errors.Is(err, work.ErrWorkEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, work.ErrNotEntryOwner):
		Forbidden(w, "Work entry belongs to another user")
	case errors.Is(err, work.ErrNotAuthorized):
		Forbidden(w, "Not authorized to view this user's records")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
