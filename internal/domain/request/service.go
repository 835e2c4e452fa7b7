package request

import "context"

type CorrectionRequestService interface {
	Create(ctx context.Context, req CreateRequest) (CorrectionRequestResponse, error)
	ListMy(ctx context.Context) ([]CorrectionRequestResponse, error)
	Update(ctx context.Context, id string, req UpdateRequest) (CorrectionRequestResponse, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, req BulkDeleteRequest) error

	// Reviewer operations
	List(ctx context.Context, status string) ([]CorrectionRequestResponse, error)
	Approve(ctx context.Context, id string, req ReviewRequest) (CorrectionRequestResponse, error)
	Reject(ctx context.Context, id string, req ReviewRequest) (CorrectionRequestResponse, error)

	// Materialize retries the clock event insert for an approved request
	// whose event creation previously failed.
	Materialize(ctx context.Context, id string) error
}
