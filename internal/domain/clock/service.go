package clock

import (
	"context"
	"time"
)

type ClockService interface {
	// RecordEvent validates the requested type against today's history and
	// appends it at the current instant. Exits that still need a break
	// decision fail with ErrBreakDecisionRequired.
	RecordEvent(ctx context.Context, req RecordEventRequest) (ClockEventResponse, error)

	// ClockOut records an exit, applying the worker's break decision when the
	// current shift segment has no break.
	ClockOut(ctx context.Context, req ClockOutRequest) ([]ClockEventResponse, error)

	StartBreak(ctx context.Context) (ClockEventResponse, error)
	FinishBreak(ctx context.Context) (ClockEventResponse, error)

	// Status returns the clock screen state derived from a fresh read of
	// today's events.
	Status(ctx context.Context, now time.Time) (ClockStatusResponse, error)

	ListMyEvents(ctx context.Context, filter ListEventsFilter) ([]ClockEventResponse, error)
}
