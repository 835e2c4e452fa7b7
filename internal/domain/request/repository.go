package request

import "context"

type CorrectionRequestRepository interface {
	Create(ctx context.Context, req CorrectionRequest) (CorrectionRequest, error)
	GetByID(ctx context.Context, id string) (CorrectionRequest, error)
	ListByUser(ctx context.Context, userID string) ([]CorrectionRequest, error)
	List(ctx context.Context, status *Status) ([]CorrectionRequest, error)

	// UpdatePending rewrites type/requested_at/reason, guarded by
	// status = 'pending'. Returns false when no pending row matched.
	UpdatePending(ctx context.Context, req CorrectionRequest) (bool, error)

	// DeletePending removes the request, guarded by owner and pending status.
	// Returns false when no matching row was deleted.
	DeletePending(ctx context.Context, id, userID string) (bool, error)

	// SetReviewed transitions pending -> approved/rejected with a
	// compare-and-swap on status. Returns false when the request was no
	// longer pending.
	SetReviewed(ctx context.Context, id string, status Status, reviewerID string, notes *string) (bool, error)
}
