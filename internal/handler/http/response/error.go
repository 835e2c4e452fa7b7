package response

import (
	"errors"
	"net/http"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/auth"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/request"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/user"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidCode):
		Unauthorized(w, "Invalid employee code")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrNoSession):
		Unauthorized(w, "No active session")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrReviewerAccessRequired):
		Forbidden(w, "Reviewer access required")

	// Clock domain errors
	case errors.Is(err, clock.ErrActionNotAvailable):
		Conflict(w, "Action not available in the current state")
	case errors.Is(err, clock.ErrBreakDecisionRequired):
		Conflict(w, "A break decision is required before clocking out")
	case errors.Is(err, clock.ErrInvalidBreakDecision):
		BadRequest(w, "Invalid break decision", nil)
	case errors.Is(err, clock.ErrBreakAlreadyOpen):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, clock.ErrNoOpenBreak):
		Conflict(w, "No break in progress")

	// Correction request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Correction request not found")
	case errors.Is(err, request.ErrRequestAlreadyProcessed):
		Conflict(w, "Correction request already processed")
	case errors.Is(err, request.ErrNotRequestOwner):
		Forbidden(w, "Correction request belongs to another user")
	case errors.Is(err, request.ErrAlreadyMaterialized):
		Conflict(w, "Correction request already has a clock event")
	case errors.Is(err, request.ErrNotApproved):
		Conflict(w, "Correction request is not approved")
	case errors.Is(err, request.ErrEventNotMaterialized):
		InternalServerError(w, "Request approved but the clock event could not be created")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
