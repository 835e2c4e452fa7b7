package request

import (
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Type        string `json:"type"`
	RequestedAt string `json:"requested_at"` // RFC3339
	Reason      string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !clock.EventType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of ENTRY_1, EXIT_1, ENTRY_2, EXIT_2, BREAK",
		})
	}

	if _, ok := validator.IsValidDateTime(r.RequestedAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_at",
			Message: "requested_at must be a valid ISO8601 timestamp",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	Type        string `json:"type"`
	RequestedAt string `json:"requested_at"`
	Reason      string `json:"reason"`
}

func (r *UpdateRequest) Validate() error {
	create := CreateRequest{Type: r.Type, RequestedAt: r.RequestedAt, Reason: r.Reason}
	return create.Validate()
}

type ReviewRequest struct {
	Notes string `json:"notes"`
}

// ValidateForRejection requires notes; approval notes stay optional.
func (r *ReviewRequest) ValidateForRejection() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Notes) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes are required when rejecting a request",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

func (r *BulkDeleteRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "ids must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CorrectionRequestResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Type        string  `json:"type"`
	RequestedAt string  `json:"requested_at"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	ReviewerID  *string `json:"reviewer_id,omitempty"`
	ReviewedAt  *string `json:"reviewed_at,omitempty"`
	ReviewNotes *string `json:"review_notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToResponse(r CorrectionRequest) CorrectionRequestResponse {
	var reviewedAt *string
	if r.ReviewedAt != nil {
		formatted := r.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &formatted
	}

	return CorrectionRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Type:        string(r.Type),
		RequestedAt: r.RequestedAt.Format(time.RFC3339),
		Reason:      r.Reason,
		Status:      string(r.Status),
		ReviewerID:  r.ReviewerID,
		ReviewedAt:  reviewedAt,
		ReviewNotes: r.ReviewNotes,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
