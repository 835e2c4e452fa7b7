package clock

import (
	"context"
	"time"
)

// ClockEventRepository is the append-only event log. Events are never updated
// or deleted; corrections arrive as new manual events.
type ClockEventRepository interface {
	// Insert appends one event and returns it with its assigned ID.
	Insert(ctx context.Context, event ClockEvent) (ClockEvent, error)

	// ListByUserAndRange returns the user's events with
	// from <= timestamp < to, sorted ascending by timestamp.
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]ClockEvent, error)

	// GetLastByUser returns the user's most recent event, or nil when the
	// user has never clocked.
	GetLastByUser(ctx context.Context, userID string) (*ClockEvent, error)

	// GetBySourceRequest returns the manual event materialized from a
	// correction request, or nil when none exists.
	GetBySourceRequest(ctx context.Context, requestID string) (*ClockEvent, error)
}
