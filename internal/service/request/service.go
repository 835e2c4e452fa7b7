package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/request"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
	"github.com/clockwork-hr/timeclock-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type CorrectionRequestServiceImpl struct {
	requestRepo request.CorrectionRequestRepository
	clockRepo   clock.ClockEventRepository
	// runInTx wraps fn in a database transaction. Held as a field so tests
	// can substitute a pass-through.
	runInTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
	now     func() time.Time
}

func NewCorrectionRequestService(db *database.DB, requestRepo request.CorrectionRequestRepository, clockRepo clock.ClockEventRepository) request.CorrectionRequestService {
	return &CorrectionRequestServiceImpl{
		requestRepo: requestRepo,
		clockRepo:   clockRepo,
		runInTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}

// getUserID extracts user_id from JWT claims
func getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in claims")
	}
	return userID, nil
}

// Create implements request.CorrectionRequestService.
func (s *CorrectionRequestServiceImpl) Create(ctx context.Context, req request.CreateRequest) (request.CorrectionRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.CorrectionRequestResponse{}, err
	}

	userID, err := getUserID(ctx)
	if err != nil {
		return request.CorrectionRequestResponse{}, err
	}

	requestedAt, _ := validator.IsValidDateTime(req.RequestedAt)

	created, err := s.requestRepo.Create(ctx, request.CorrectionRequest{
		UserID:      userID,
		Type:        clock.EventType(req.Type),
		RequestedAt: requestedAt,
		Reason:      req.Reason,
		Status:      request.StatusPending,
	})
	if err != nil {
		return request.CorrectionRequestResponse{}, fmt.Errorf("failed to create correction request: %w", err)
	}

	return request.ToResponse(created), nil
}

// ListMy implements request.CorrectionRequestService.
func (s *CorrectionRequestServiceImpl) ListMy(ctx context.Context) ([]request.CorrectionRequestResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list correction requests: %w", err)
	}

	responses := make([]request.CorrectionRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, request.ToResponse(r))
	}
	return responses, nil
}

// List implements request.CorrectionRequestService.
func (s *CorrectionRequestServiceImpl) List(ctx context.Context, status string) ([]request.CorrectionRequestResponse, error) {
	var statusFilter *request.Status
	if status != "" {
		if !validator.IsInSlice(status, []string{
			string(request.StatusPending),
			string(request.StatusApproved),
			string(request.StatusRejected),
		}) {
			return nil, validator.ValidationErrors{{
				Field:   "status",
				Message: "status must be one of pending, approved, rejected",
			}}
		}
		s := request.Status(status)
		statusFilter = &s
	}

	requests, err := s.requestRepo.List(ctx, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list correction requests: %w", err)
	}

	responses := make([]request.CorrectionRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, request.ToResponse(r))
	}
	return responses, nil
}

// getOwnedPending loads a request and checks it is the caller's and still
// pending. Non-pending and not-owned both surface as conflicts, matching the
// mutation rules for worker-side edits.
func (s *CorrectionRequestServiceImpl) getOwnedPending(ctx context.Context, id, userID string) (request.CorrectionRequest, error) {
	existing, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.CorrectionRequest{}, request.ErrRequestNotFound
		}
		return request.CorrectionRequest{}, fmt.Errorf("failed to get correction request: %w", err)
	}

	if existing.UserID != userID {
		return request.CorrectionRequest{}, request.ErrNotRequestOwner
	}
	if !existing.IsPending() {
		return request.CorrectionRequest{}, request.ErrRequestAlreadyProcessed
	}
	return existing, nil
}

// Update implements request.CorrectionRequestService.
func (s *CorrectionRequestServiceImpl) Update(ctx context.Context, id string, req request.UpdateRequest) (request.CorrectionRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.CorrectionRequestResponse{}, err
	}

	userID, err := getUserID(ctx)
	if err != nil {
		return request.CorrectionRequestResponse{}, err
	}

	existing, err := s.getOwnedPending(ctx, id, userID)
	if err != nil {
		return request.CorrectionRequestResponse{}, err
	}

	requestedAt, _ := validator.IsValidDateTime(req.RequestedAt)
	existing.Type = clock.EventType(req.Type)
	existing.RequestedAt = requestedAt
	existing.Reason = req.Reason

	ok, err := s.requestRepo.UpdatePending(ctx, existing)
	if err != nil {
		return request.CorrectionRequestResponse{}, fmt.Errorf("failed to update correction request: %w", err)
	}
	if !ok {
		// Reviewed between our read and the guarded write.
		return request.CorrectionRequestResponse{}, request.ErrRequestAlreadyProcessed
	}

	updated, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.CorrectionRequestResponse{}, fmt.Errorf("failed to reload correction request: %w", err)
	}
	return request.ToResponse(updated), nil
}

// Delete implements request.CorrectionRequestService.
func (s *CorrectionRequestServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := getUserID(ctx)
	if err != nil {
		return err
	}

	if _, err := s.getOwnedPending(ctx, id, userID); err != nil {
		return err
	}

	ok, err := s.requestRepo.DeletePending(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete correction request: %w", err)
	}
	if !ok {
		return request.ErrRequestAlreadyProcessed
	}
	return nil
}

// BulkDelete implements request.CorrectionRequestService. Every target must
// be owned and pending before anything is deleted; the deletes then run in
// one transaction so a failure leaves no partial removal.
func (s *CorrectionRequestServiceImpl) BulkDelete(ctx context.Context, req request.BulkDeleteRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := getUserID(ctx)
	if err != nil {
		return err
	}

	for _, id := range req.IDs {
		if _, err := s.getOwnedPending(ctx, id, userID); err != nil {
			return err
		}
	}

	return s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, id := range req.IDs {
			ok, err := s.requestRepo.DeletePending(txCtx, id, userID)
			if err != nil {
				return fmt.Errorf("failed to delete correction request %s: %w", id, err)
			}
			if !ok {
				return request.ErrRequestAlreadyProcessed
			}
		}
		return nil
	})
}

// Approve implements request.CorrectionRequestService. The status transition
// is authoritative: once the compare-and-swap lands, a failure to insert the
// manual clock event does not roll approval back. The caller retries the
// event via Materialize.
func (s *CorrectionRequestServiceImpl) Approve(ctx context.Context, id string, req request.ReviewRequest) (request.CorrectionRequestResponse, error) {
	reviewerID, err := getUserID(ctx)
	if err != nil {
		return request.CorrectionRequestResponse{}, err
	}

	existing, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.CorrectionRequestResponse{}, request.ErrRequestNotFound
		}
		return request.CorrectionRequestResponse{}, fmt.Errorf("failed to get correction request: %w", err)
	}

	var notes *string
	if !validator.IsEmpty(req.Notes) {
		notes = &req.Notes
	}

	ok, err := s.requestRepo.SetReviewed(ctx, id, request.StatusApproved, reviewerID, notes)
	if err != nil {
		return request.CorrectionRequestResponse{}, fmt.Errorf("failed to approve correction request: %w", err)
	}
	if !ok {
		return request.CorrectionRequestResponse{}, request.ErrRequestAlreadyProcessed
	}

	approved, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.CorrectionRequestResponse{}, fmt.Errorf("failed to reload correction request: %w", err)
	}

	if err := s.materializeEvent(ctx, existing); err != nil {
		return request.ToResponse(approved), fmt.Errorf("%w: %v", request.ErrEventNotMaterialized, err)
	}

	return request.ToResponse(approved), nil
}

// Reject implements request.CorrectionRequestService.
func (s *CorrectionRequestServiceImpl) Reject(ctx context.Context, id string, req request.ReviewRequest) (request.CorrectionRequestResponse, error) {
	if err := req.ValidateForRejection(); err != nil {
		return request.CorrectionRequestResponse{}, err
	}

	reviewerID, err := getUserID(ctx)
	if err != nil {
		return request.CorrectionRequestResponse{}, err
	}

	if _, err := s.requestRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.CorrectionRequestResponse{}, request.ErrRequestNotFound
		}
		return request.CorrectionRequestResponse{}, fmt.Errorf("failed to get correction request: %w", err)
	}

	ok, err := s.requestRepo.SetReviewed(ctx, id, request.StatusRejected, reviewerID, &req.Notes)
	if err != nil {
		return request.CorrectionRequestResponse{}, fmt.Errorf("failed to reject correction request: %w", err)
	}
	if !ok {
		return request.CorrectionRequestResponse{}, request.ErrRequestAlreadyProcessed
	}

	rejected, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.CorrectionRequestResponse{}, fmt.Errorf("failed to reload correction request: %w", err)
	}
	return request.ToResponse(rejected), nil
}

// Materialize implements request.CorrectionRequestService.
func (s *CorrectionRequestServiceImpl) Materialize(ctx context.Context, id string) error {
	existing, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.ErrRequestNotFound
		}
		return fmt.Errorf("failed to get correction request: %w", err)
	}

	if existing.Status != request.StatusApproved {
		return request.ErrNotApproved
	}

	event, err := s.clockRepo.GetBySourceRequest(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check existing clock event: %w", err)
	}
	if event != nil {
		return request.ErrAlreadyMaterialized
	}

	return s.materializeEvent(ctx, existing)
}

func (s *CorrectionRequestServiceImpl) materializeEvent(ctx context.Context, req request.CorrectionRequest) error {
	_, err := s.clockRepo.Insert(ctx, clock.ClockEvent{
		UserID:          req.UserID,
		Type:            req.Type,
		Timestamp:       req.RequestedAt,
		IsManual:        true,
		SourceRequestID: &req.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to insert manual clock event: %w", err)
	}
	return nil
}
