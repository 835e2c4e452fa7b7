package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/dashboard"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/user"
	clockService "github.com/clockwork-hr/timeclock-backend-go/internal/service/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClockEventRepo struct {
	events []clock.ClockEvent
}

func (f *fakeClockEventRepo) Insert(ctx context.Context, event clock.ClockEvent) (clock.ClockEvent, error) {
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeClockEventRepo) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]clock.ClockEvent, error) {
	var out []clock.ClockEvent
	for _, e := range f.events {
		if e.UserID == userID && !e.Timestamp.Before(from) && e.Timestamp.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeClockEventRepo) GetLastByUser(ctx context.Context, userID string) (*clock.ClockEvent, error) {
	return nil, nil
}

func (f *fakeClockEventRepo) GetBySourceRequest(ctx context.Context, requestID string) (*clock.ClockEvent, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmployeeCode(ctx context.Context, code string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, req user.UpdateProfileRequest) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func dashboardContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "worker",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func workDay(userID string, day time.Time) []clock.ClockEvent {
	return []clock.ClockEvent{
		{UserID: userID, Type: clock.EventEntry1, Timestamp: day.Add(9 * time.Hour)},
		{UserID: userID, Type: clock.EventBreak, Timestamp: day.Add(13 * time.Hour)},
		{UserID: userID, Type: clock.EventBreak, Timestamp: day.Add(13*time.Hour + 30*time.Minute)},
		{UserID: userID, Type: clock.EventExit1, Timestamp: day.Add(17*time.Hour + 30*time.Minute)},
	}
}

func newTestDashboardService(clockRepo *fakeClockEventRepo, userRepo *fakeUserRepo, now time.Time) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		clockRepo:  clockRepo,
		userRepo:   userRepo,
		aggregator: clockService.NewAggregator(),
		loc:        time.UTC,
		now:        func() time.Time { return now },
	}
}

func TestDashboardService_GetWorkMetrics(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	clockRepo := &fakeClockEventRepo{}
	clockRepo.events = append(clockRepo.events, workDay("user-1", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))...)
	clockRepo.events = append(clockRepo.events, workDay("user-1", time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC))...)
	// Another user's events must not leak into the metrics.
	clockRepo.events = append(clockRepo.events, workDay("user-2", time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC))...)

	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", WeeklyHoursTarget: 40, IsActive: true},
	}}

	svc := newTestDashboardService(clockRepo, userRepo, now)
	ctx := dashboardContext(t, "user-1")

	metrics, err := svc.GetWorkMetrics(ctx, dashboard.RangeFilter{
		StartDate: "2025-09-01",
		EndDate:   "2025-09-07",
	})
	require.NoError(t, err)

	assert.Equal(t, 960, metrics.WorkedMinutes)
	assert.Equal(t, 60, metrics.BreakMinutes)
	assert.Equal(t, 2, metrics.DaysWorked)
	assert.Equal(t, 7, metrics.ExpectedDays)
	assert.Equal(t, 2400, metrics.ExpectedMinutes)
	assert.Equal(t, -1440, metrics.OvertimeMinutes)
}

func TestDashboardService_GetWorkMetrics_UnknownUserFallsBackToDefaultTarget(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboardService(&fakeClockEventRepo{}, &fakeUserRepo{users: map[string]user.User{}}, now)
	ctx := dashboardContext(t, "user-1")

	metrics, err := svc.GetWorkMetrics(ctx, dashboard.RangeFilter{
		StartDate: "2025-09-01",
		EndDate:   "2025-09-07",
	})
	require.NoError(t, err)

	// 7 days at the default 40h/week target.
	assert.Equal(t, 2400, metrics.ExpectedMinutes)
}

func TestDashboardService_GetWeeklyBreakdown_CustomTarget(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	clockRepo := &fakeClockEventRepo{}
	for i := 0; i < 5; i++ {
		clockRepo.events = append(clockRepo.events, workDay("user-1", time.Date(2025, 9, 8+i, 0, 0, 0, 0, time.UTC))...)
	}

	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", WeeklyHoursTarget: 30, IsActive: true},
	}}

	svc := newTestDashboardService(clockRepo, userRepo, now)
	ctx := dashboardContext(t, "user-1")

	weekly, err := svc.GetWeeklyBreakdown(ctx, dashboard.MonthFilter{Month: "2025-09"})
	require.NoError(t, err)

	require.Len(t, weekly, 5)
	// Five 8h-net days against a 30h target: 600 surplus minutes.
	assert.Equal(t, 2400, weekly[1].WorkedMinutes)
	assert.Equal(t, 600, weekly[1].OvertimeMinutes)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	clockRepo := &fakeClockEventRepo{}
	clockRepo.events = append(clockRepo.events, workDay("user-1", time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC))...)

	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", WeeklyHoursTarget: 40, IsActive: true},
	}}

	svc := newTestDashboardService(clockRepo, userRepo, now)
	ctx := dashboardContext(t, "user-1")

	result, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2025-09-01", result.Metrics.StartDate)
	assert.Equal(t, "2025-09-30", result.Metrics.EndDate)
	assert.Equal(t, 480, result.Metrics.WorkedMinutes)
	assert.Len(t, result.Daily, 30)
	assert.Len(t, result.Weekly, 5)

	var today *dashboard.DailyBreakdownItem
	for i := range result.Daily {
		if result.Daily[i].IsToday {
			today = &result.Daily[i]
		}
	}
	require.NotNil(t, today)
	assert.Equal(t, "2025-09-15", today.Date)
	assert.Equal(t, 480, today.WorkedMinutes)
}

func TestDashboardService_GetWorkMetrics_InvalidRange(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestDashboardService(&fakeClockEventRepo{}, &fakeUserRepo{users: map[string]user.User{}}, now)
	ctx := dashboardContext(t, "user-1")

	_, err := svc.GetWorkMetrics(ctx, dashboard.RangeFilter{
		StartDate: "2025-09-07",
		EndDate:   "2025-09-01",
	})
	assert.Error(t, err)
}
