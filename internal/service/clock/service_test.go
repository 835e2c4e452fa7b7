package clock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events []clock.ClockEvent
}

func (f *fakeEventRepo) Insert(ctx context.Context, event clock.ClockEvent) (clock.ClockEvent, error) {
	event.ID = fmt.Sprintf("event-%d", len(f.events)+1)
	event.CreatedAt = time.Now()
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeEventRepo) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]clock.ClockEvent, error) {
	var out []clock.ClockEvent
	for _, e := range f.events {
		if e.UserID == userID && !e.Timestamp.Before(from) && e.Timestamp.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetLastByUser(ctx context.Context, userID string) (*clock.ClockEvent, error) {
	var last *clock.ClockEvent
	for i := range f.events {
		if f.events[i].UserID == userID {
			last = &f.events[i]
		}
	}
	return last, nil
}

func (f *fakeEventRepo) GetBySourceRequest(ctx context.Context, requestID string) (*clock.ClockEvent, error) {
	return nil, nil
}

func workerContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    "worker",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestClockService(repo *fakeEventRepo, now time.Time) *ClockServiceImpl {
	return &ClockServiceImpl{
		repo:       repo,
		sequencer:  NewSequencer(),
		aggregator: NewAggregator(),
		loc:        time.UTC,
		now:        func() time.Time { return now },
	}
}

func TestClockService_RecordEvent_FirstEntry(t *testing.T) {
	repo := &fakeEventRepo{}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	event, err := svc.RecordEvent(ctx, clock.RecordEventRequest{Type: "ENTRY_1"})
	require.NoError(t, err)

	assert.Equal(t, "ENTRY_1", event.Type)
	assert.False(t, event.IsManual)
	require.Len(t, repo.events, 1)
	assert.Equal(t, now, repo.events[0].Timestamp)
}

func TestClockService_RecordEvent_RejectsUnavailableAction(t *testing.T) {
	repo := &fakeEventRepo{}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	_, err := svc.RecordEvent(ctx, clock.RecordEventRequest{Type: "EXIT_1"})
	assert.ErrorIs(t, err, clock.ErrActionNotAvailable)
	assert.Empty(t, repo.events)
}

func TestClockService_RecordEvent_ExitNeedsBreakDecision(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []clock.ClockEvent{
		{ID: "event-1", UserID: "user-1", Type: clock.EventEntry1, Timestamp: now.Add(-8 * time.Hour)},
	}}
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	_, err := svc.RecordEvent(ctx, clock.RecordEventRequest{Type: "EXIT_1"})
	assert.ErrorIs(t, err, clock.ErrBreakDecisionRequired)
	assert.Len(t, repo.events, 1)
}

func TestClockService_ClockOut_BreakTaken(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []clock.ClockEvent{
		{ID: "event-1", UserID: "user-1", Type: clock.EventEntry1, Timestamp: now.Add(-8 * time.Hour)},
	}}
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	responses, err := svc.ClockOut(ctx, clock.ClockOutRequest{Type: "EXIT_1", Decision: "break_taken"})
	require.NoError(t, err)
	require.Len(t, responses, 3)

	assert.Equal(t, "BREAK", responses[0].Type)
	assert.Equal(t, "BREAK", responses[1].Type)
	assert.Equal(t, "EXIT_1", responses[2].Type)

	// The acknowledgement pair is zero-duration and the exit stays at now.
	require.Len(t, repo.events, 4)
	assert.Equal(t, repo.events[1].Timestamp, repo.events[2].Timestamp)
	assert.Equal(t, now, repo.events[3].Timestamp)
	assert.False(t, repo.events[3].IsManual)
}

func TestClockService_ClockOut_NoBreakShiftsExit(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []clock.ClockEvent{
		{ID: "event-1", UserID: "user-1", Type: clock.EventEntry1, Timestamp: now.Add(-8 * time.Hour)},
	}}
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	responses, err := svc.ClockOut(ctx, clock.ClockOutRequest{Type: "EXIT_1", Decision: "no_break"})
	require.NoError(t, err)
	require.Len(t, responses, 1)

	require.Len(t, repo.events, 2)
	exit := repo.events[1]
	assert.Equal(t, clock.EventExit1, exit.Type)
	assert.Equal(t, now.Add(30*time.Minute), exit.Timestamp)
	assert.True(t, exit.IsManual)
}

func TestClockService_ClockOut_DecisionRequired(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []clock.ClockEvent{
		{ID: "event-1", UserID: "user-1", Type: clock.EventEntry1, Timestamp: now.Add(-8 * time.Hour)},
	}}
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	_, err := svc.ClockOut(ctx, clock.ClockOutRequest{Type: "EXIT_1"})
	assert.ErrorIs(t, err, clock.ErrBreakDecisionRequired)
	assert.Len(t, repo.events, 1)
}

func TestClockService_ClockOut_NoPromptAfterRealBreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []clock.ClockEvent{
		{ID: "event-1", UserID: "user-1", Type: clock.EventEntry1, Timestamp: now.Add(-8 * time.Hour)},
		{ID: "event-2", UserID: "user-1", Type: clock.EventBreak, Timestamp: now.Add(-4 * time.Hour)},
		{ID: "event-3", UserID: "user-1", Type: clock.EventBreak, Timestamp: now.Add(-210 * time.Minute)},
	}}
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	responses, err := svc.ClockOut(ctx, clock.ClockOutRequest{Type: "EXIT_1"})
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "EXIT_1", responses[0].Type)
	assert.Len(t, repo.events, 4)
}

func TestClockService_BreakLifecycle(t *testing.T) {
	now := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []clock.ClockEvent{
		{ID: "event-1", UserID: "user-1", Type: clock.EventEntry1, Timestamp: now.Add(-4 * time.Hour)},
	}}
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	_, err := svc.FinishBreak(ctx)
	assert.ErrorIs(t, err, clock.ErrNoOpenBreak)

	_, err = svc.StartBreak(ctx)
	require.NoError(t, err)

	_, err = svc.StartBreak(ctx)
	assert.ErrorIs(t, err, clock.ErrBreakAlreadyOpen)

	_, err = svc.FinishBreak(ctx)
	require.NoError(t, err)

	assert.Len(t, repo.events, 3)
}

func TestClockService_Status(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []clock.ClockEvent{
		{ID: "event-1", UserID: "user-1", Type: clock.EventEntry1, Timestamp: now.Add(-5 * time.Hour)},
		{ID: "event-2", UserID: "user-1", Type: clock.EventBreak, Timestamp: now.Add(-20 * time.Minute)},
	}}
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	status, err := svc.Status(ctx, now)
	require.NoError(t, err)

	assert.True(t, status.OnBreak)
	assert.Equal(t, 20, status.BreakElapsedMinutes)
	assert.Empty(t, status.AvailableActions)
	assert.Len(t, status.TodayEvents, 2)

	require.NotNil(t, status.LastEvent)
	assert.Equal(t, "event-2", status.LastEvent.ID)
	assert.Equal(t, "BREAK", status.LastEvent.Type)

	// The open break is excluded from the day totals.
	assert.Equal(t, 0, status.WorkedMinutes)
	assert.Equal(t, 0, status.BreakMinutes)
}

func TestClockService_Status_EmptyDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestClockService(&fakeEventRepo{}, now)
	ctx := workerContext(t)

	status, err := svc.Status(ctx, now)
	require.NoError(t, err)

	assert.False(t, status.OnBreak)
	assert.Equal(t, []string{"ENTRY_1"}, status.AvailableActions)
	assert.Equal(t, 0, status.NetMinutes)
	assert.Nil(t, status.LastEvent)
	assert.Empty(t, status.TodayEvents)
}

func TestClockService_ListMyEvents_RangeInclusive(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []clock.ClockEvent{
		{ID: "event-1", UserID: "user-1", Type: clock.EventEntry1, Timestamp: time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)},
		{ID: "event-2", UserID: "user-1", Type: clock.EventEntry1, Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "event-3", UserID: "user-1", Type: clock.EventEntry1, Timestamp: time.Date(2025, 3, 11, 23, 59, 0, 0, time.UTC)},
		{ID: "event-4", UserID: "user-1", Type: clock.EventEntry1, Timestamp: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)},
	}}
	svc := newTestClockService(repo, now)
	ctx := workerContext(t)

	events, err := svc.ListMyEvents(ctx, clock.ListEventsFilter{From: "2025-03-10", To: "2025-03-11"})
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "event-2", events[0].ID)
	assert.Equal(t, "event-3", events[1].ID)
}
