package request

import "errors"

// Correction request domain errors
var (
	ErrRequestNotFound         = errors.New("correction request not found")
	ErrRequestAlreadyProcessed = errors.New("correction request has already been approved or rejected")
	ErrNotRequestOwner         = errors.New("correction request belongs to another user")

	// ErrEventNotMaterialized means the request was approved but the manual
	// clock event could not be created. Approval stands; the event insert can
	// be retried.
	ErrEventNotMaterialized = errors.New("request approved but clock event creation failed")
	ErrAlreadyMaterialized  = errors.New("clock event for this request already exists")
	ErrNotApproved          = errors.New("correction request is not approved")
)
