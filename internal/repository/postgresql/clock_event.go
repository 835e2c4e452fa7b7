package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type clockEventRepository struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) clock.ClockEventRepository {
	return &clockEventRepository{db: db}
}

// Insert implements clock.ClockEventRepository.
func (r *clockEventRepository) Insert(ctx context.Context, event clock.ClockEvent) (clock.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	event.ID = uuid.NewString()

	query := `
		INSERT INTO clock_events (id, user_id, event_type, event_time, is_manual, source_request_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.UserID,
		string(event.Type),
		event.Timestamp,
		event.IsManual,
		event.SourceRequestID,
	).Scan(&event.CreatedAt)
	if err != nil {
		return clock.ClockEvent{}, fmt.Errorf("failed to insert clock event: %w", err)
	}

	return event, nil
}

// ListByUserAndRange implements clock.ClockEventRepository.
func (r *clockEventRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]clock.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, event_type, event_time, is_manual, source_request_id, created_at
		FROM clock_events
		WHERE user_id = $1
		  AND event_time >= $2
		  AND event_time < $3
		ORDER BY event_time ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	var events []clock.ClockEvent
	for rows.Next() {
		var e clock.ClockEvent
		var eventType string
		if err := rows.Scan(&e.ID, &e.UserID, &eventType, &e.Timestamp, &e.IsManual, &e.SourceRequestID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		e.Type = clock.EventType(eventType)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clock events: %w", err)
	}

	return events, nil
}

// GetLastByUser implements clock.ClockEventRepository.
func (r *clockEventRepository) GetLastByUser(ctx context.Context, userID string) (*clock.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, event_type, event_time, is_manual, source_request_id, created_at
		FROM clock_events
		WHERE user_id = $1
		ORDER BY event_time DESC
		LIMIT 1
	`

	var e clock.ClockEvent
	var eventType string
	err := q.QueryRow(ctx, query, userID).Scan(&e.ID, &e.UserID, &eventType, &e.Timestamp, &e.IsManual, &e.SourceRequestID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last clock event: %w", err)
	}
	e.Type = clock.EventType(eventType)

	return &e, nil
}

// GetBySourceRequest implements clock.ClockEventRepository.
func (r *clockEventRepository) GetBySourceRequest(ctx context.Context, requestID string) (*clock.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, event_type, event_time, is_manual, source_request_id, created_at
		FROM clock_events
		WHERE source_request_id = $1
		LIMIT 1
	`

	var e clock.ClockEvent
	var eventType string
	err := q.QueryRow(ctx, query, requestID).Scan(&e.ID, &e.UserID, &eventType, &e.Timestamp, &e.IsManual, &e.SourceRequestID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get clock event by source request: %w", err)
	}
	e.Type = clock.EventType(eventType)

	return &e, nil
}
