package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/request"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type correctionRequestRepository struct {
	db *database.DB
}

func NewCorrectionRequestRepository(db *database.DB) request.CorrectionRequestRepository {
	return &correctionRequestRepository{db: db}
}

const correctionRequestColumns = `
	id, user_id, event_type, requested_at, reason, status,
	reviewer_id, reviewed_at, review_notes, created_at, updated_at
`

func scanCorrectionRequest(row pgx.Row) (request.CorrectionRequest, error) {
	var r request.CorrectionRequest
	var eventType, status string
	err := row.Scan(
		&r.ID, &r.UserID, &eventType, &r.RequestedAt, &r.Reason, &status,
		&r.ReviewerID, &r.ReviewedAt, &r.ReviewNotes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return request.CorrectionRequest{}, err
	}
	r.Type = clock.EventType(eventType)
	r.Status = request.Status(status)
	return r, nil
}

// Create implements request.CorrectionRequestRepository.
func (repo *correctionRequestRepository) Create(ctx context.Context, req request.CorrectionRequest) (request.CorrectionRequest, error) {
	q := GetQuerier(ctx, repo.db)

	req.ID = uuid.NewString()

	query := `
		INSERT INTO correction_requests (id, user_id, event_type, requested_at, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.UserID,
		string(req.Type),
		req.RequestedAt,
		req.Reason,
		string(req.Status),
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return request.CorrectionRequest{}, fmt.Errorf("failed to create correction request: %w", err)
	}

	return req, nil
}

// GetByID implements request.CorrectionRequestRepository.
func (repo *correctionRequestRepository) GetByID(ctx context.Context, id string) (request.CorrectionRequest, error) {
	q := GetQuerier(ctx, repo.db)

	query := `SELECT ` + correctionRequestColumns + ` FROM correction_requests WHERE id = $1`

	return scanCorrectionRequest(q.QueryRow(ctx, query, id))
}

// ListByUser implements request.CorrectionRequestRepository.
func (repo *correctionRequestRepository) ListByUser(ctx context.Context, userID string) ([]request.CorrectionRequest, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT ` + correctionRequestColumns + `
		FROM correction_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list correction requests: %w", err)
	}
	defer rows.Close()

	return collectCorrectionRequests(rows)
}

// List implements request.CorrectionRequestRepository.
func (repo *correctionRequestRepository) List(ctx context.Context, status *request.Status) ([]request.CorrectionRequest, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT ` + correctionRequestColumns + `
		FROM correction_requests
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at ASC
	`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := q.Query(ctx, query, statusArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list correction requests: %w", err)
	}
	defer rows.Close()

	return collectCorrectionRequests(rows)
}

// UpdatePending implements request.CorrectionRequestRepository.
func (repo *correctionRequestRepository) UpdatePending(ctx context.Context, req request.CorrectionRequest) (bool, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		UPDATE correction_requests
		SET event_type = $2, requested_at = $3, reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, req.ID, string(req.Type), req.RequestedAt, req.Reason)
	if err != nil {
		return false, fmt.Errorf("failed to update correction request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeletePending implements request.CorrectionRequestRepository.
func (repo *correctionRequestRepository) DeletePending(ctx context.Context, id, userID string) (bool, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		DELETE FROM correction_requests
		WHERE id = $1 AND user_id = $2 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete correction request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SetReviewed implements request.CorrectionRequestRepository. The status
// predicate is the compare-and-swap that resolves concurrent reviews: the
// second reviewer matches zero rows.
func (repo *correctionRequestRepository) SetReviewed(ctx context.Context, id string, status request.Status, reviewerID string, notes *string) (bool, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		UPDATE correction_requests
		SET status = $2, reviewer_id = $3, reviewed_at = NOW(), review_notes = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, string(status), reviewerID, notes)
	if err != nil {
		return false, fmt.Errorf("failed to review correction request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func collectCorrectionRequests(rows pgx.Rows) ([]request.CorrectionRequest, error) {
	var requests []request.CorrectionRequest
	for rows.Next() {
		r, err := scanCorrectionRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan correction request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate correction requests: %w", err)
	}
	return requests, nil
}
