package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/go-chi/jwtauth/v5"
)

// mandatoryBreakCompensation is added to the exit timestamp when the worker
// clocks out declaring they took no break.
const mandatoryBreakCompensation = 30 * time.Minute

type ClockServiceImpl struct {
	repo       clock.ClockEventRepository
	sequencer  *Sequencer
	aggregator *Aggregator
	loc        *time.Location
	now        func() time.Time
}

func NewClockService(repo clock.ClockEventRepository, loc *time.Location) clock.ClockService {
	if loc == nil {
		loc = time.Local
	}
	return &ClockServiceImpl{
		repo:       repo,
		sequencer:  NewSequencer(),
		aggregator: NewAggregator(),
		loc:        loc,
		now:        time.Now,
	}
}

// userIDFromContext extracts user_id from JWT claims
func userIDFromContext(ctx context.Context) (string, error) {
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

// todayEvents re-reads the day's events. Every operation starts from a fresh
// list instead of trusting anything cached, so sequencing decisions always
// see prior inserts.
func (s *ClockServiceImpl) todayEvents(ctx context.Context, userID string, now time.Time) ([]clock.ClockEvent, error) {
	local := now.In(s.loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return s.repo.ListByUserAndRange(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
}

// RecordEvent implements clock.ClockService.
func (s *ClockServiceImpl) RecordEvent(ctx context.Context, req clock.RecordEventRequest) (clock.ClockEventResponse, error) {
	if err := req.Validate(); err != nil {
		return clock.ClockEventResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return clock.ClockEventResponse{}, err
	}

	now := s.now()
	events, err := s.todayEvents(ctx, userID, now)
	if err != nil {
		return clock.ClockEventResponse{}, fmt.Errorf("failed to list today's events: %w", err)
	}

	eventType := clock.EventType(req.Type)
	onBreak := clock.OpenBreak(events) != nil

	if !actionOffered(s.sequencer.AvailableActions(events, onBreak), eventType) {
		return clock.ClockEventResponse{}, clock.ErrActionNotAvailable
	}

	if eventType.IsExit() && s.sequencer.NeedsBreakDecision(events, eventType) {
		return clock.ClockEventResponse{}, clock.ErrBreakDecisionRequired
	}

	inserted, err := s.repo.Insert(ctx, clock.ClockEvent{
		UserID:    userID,
		Type:      eventType,
		Timestamp: now,
	})
	if err != nil {
		return clock.ClockEventResponse{}, fmt.Errorf("failed to insert clock event: %w", err)
	}

	return clock.ToClockEventResponse(inserted), nil
}

// ClockOut implements clock.ClockService.
func (s *ClockServiceImpl) ClockOut(ctx context.Context, req clock.ClockOutRequest) ([]clock.ClockEventResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	events, err := s.todayEvents(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's events: %w", err)
	}

	exitType := clock.EventType(req.Type)
	onBreak := clock.OpenBreak(events) != nil

	if !actionOffered(s.sequencer.AvailableActions(events, onBreak), exitType) {
		return nil, clock.ErrActionNotAvailable
	}

	if !s.sequencer.NeedsBreakDecision(events, exitType) {
		return s.insertAll(ctx, clock.ClockEvent{UserID: userID, Type: exitType, Timestamp: now})
	}

	switch clock.BreakDecision(req.Decision) {
	case clock.BreakTaken:
		// Acknowledge the break with an instantaneous pair, then exit. The
		// pair is intentionally zero-duration: the worker confirmed a break
		// happened but its real timespan is unknown.
		return s.insertAll(ctx,
			clock.ClockEvent{UserID: userID, Type: clock.EventBreak, Timestamp: now},
			clock.ClockEvent{UserID: userID, Type: clock.EventBreak, Timestamp: now},
			clock.ClockEvent{UserID: userID, Type: exitType, Timestamp: now},
		)
	case clock.NoBreak:
		return s.insertAll(ctx, clock.ClockEvent{
			UserID:    userID,
			Type:      exitType,
			Timestamp: now.Add(mandatoryBreakCompensation),
			IsManual:  true,
		})
	case "":
		return nil, clock.ErrBreakDecisionRequired
	}

	return nil, clock.ErrInvalidBreakDecision
}

func (s *ClockServiceImpl) insertAll(ctx context.Context, events ...clock.ClockEvent) ([]clock.ClockEventResponse, error) {
	responses := make([]clock.ClockEventResponse, 0, len(events))
	for _, e := range events {
		inserted, err := s.repo.Insert(ctx, e)
		if err != nil {
			return responses, fmt.Errorf("failed to insert clock event: %w", err)
		}
		responses = append(responses, clock.ToClockEventResponse(inserted))
	}
	return responses, nil
}

// StartBreak implements clock.ClockService.
func (s *ClockServiceImpl) StartBreak(ctx context.Context) (clock.ClockEventResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return clock.ClockEventResponse{}, err
	}

	now := s.now()
	events, err := s.todayEvents(ctx, userID, now)
	if err != nil {
		return clock.ClockEventResponse{}, fmt.Errorf("failed to list today's events: %w", err)
	}

	if clock.OpenBreak(events) != nil {
		return clock.ClockEventResponse{}, clock.ErrBreakAlreadyOpen
	}

	if !actionOffered(s.sequencer.AvailableActions(events, false), clock.EventBreak) {
		return clock.ClockEventResponse{}, clock.ErrActionNotAvailable
	}

	inserted, err := s.repo.Insert(ctx, clock.ClockEvent{
		UserID:    userID,
		Type:      clock.EventBreak,
		Timestamp: now,
	})
	if err != nil {
		return clock.ClockEventResponse{}, fmt.Errorf("failed to insert break start: %w", err)
	}

	return clock.ToClockEventResponse(inserted), nil
}

// FinishBreak implements clock.ClockService.
func (s *ClockServiceImpl) FinishBreak(ctx context.Context) (clock.ClockEventResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return clock.ClockEventResponse{}, err
	}

	now := s.now()
	events, err := s.todayEvents(ctx, userID, now)
	if err != nil {
		return clock.ClockEventResponse{}, fmt.Errorf("failed to list today's events: %w", err)
	}

	if clock.OpenBreak(events) == nil {
		return clock.ClockEventResponse{}, clock.ErrNoOpenBreak
	}

	inserted, err := s.repo.Insert(ctx, clock.ClockEvent{
		UserID:    userID,
		Type:      clock.EventBreak,
		Timestamp: now,
	})
	if err != nil {
		return clock.ClockEventResponse{}, fmt.Errorf("failed to insert break end: %w", err)
	}

	return clock.ToClockEventResponse(inserted), nil
}

// Status implements clock.ClockService.
func (s *ClockServiceImpl) Status(ctx context.Context, now time.Time) (clock.ClockStatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return clock.ClockStatusResponse{}, err
	}

	if now.IsZero() {
		now = s.now()
	}

	events, err := s.todayEvents(ctx, userID, now)
	if err != nil {
		return clock.ClockStatusResponse{}, fmt.Errorf("failed to list today's events: %w", err)
	}

	lastEvent, err := s.repo.GetLastByUser(ctx, userID)
	if err != nil {
		return clock.ClockStatusResponse{}, fmt.Errorf("failed to get last clock event: %w", err)
	}
	var lastEventResponse *clock.ClockEventResponse
	if lastEvent != nil {
		r := clock.ToClockEventResponse(*lastEvent)
		lastEventResponse = &r
	}

	openBreak := clock.OpenBreak(events)
	onBreak := openBreak != nil

	elapsed := 0
	if onBreak {
		elapsed = int(openBreak.Duration(now) / time.Minute)
	}

	totals := s.aggregator.DailyTotals(events)

	actions := s.sequencer.AvailableActions(events, onBreak)
	actionStrings := make([]string, 0, len(actions))
	for _, a := range actions {
		actionStrings = append(actionStrings, string(a))
	}

	eventResponses := make([]clock.ClockEventResponse, 0, len(events))
	for _, e := range events {
		eventResponses = append(eventResponses, clock.ToClockEventResponse(e))
	}

	return clock.ClockStatusResponse{
		AvailableActions:    actionStrings,
		OnBreak:             onBreak,
		BreakElapsedMinutes: elapsed,
		WorkedMinutes:       totals.WorkedMinutes,
		BreakMinutes:        totals.BreakMinutes,
		NetMinutes:          totals.NetMinutes,
		LastEvent:           lastEventResponse,
		TodayEvents:         eventResponses,
	}, nil
}

// ListMyEvents implements clock.ClockService.
func (s *ClockServiceImpl) ListMyEvents(ctx context.Context, filter clock.ListEventsFilter) ([]clock.ClockEventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fromDate, _ := time.ParseInLocation("2006-01-02", filter.From, s.loc)
	toDate, _ := time.ParseInLocation("2006-01-02", filter.To, s.loc)

	events, err := s.repo.ListByUserAndRange(ctx, userID, fromDate, toDate.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}

	responses := make([]clock.ClockEventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, clock.ToClockEventResponse(e))
	}
	return responses, nil
}

func actionOffered(actions []clock.EventType, t clock.EventType) bool {
	for _, a := range actions {
		if a == t {
			return true
		}
	}
	return false
}
