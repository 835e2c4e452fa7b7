package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/dashboard"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/user"
	clockService "github.com/clockwork-hr/timeclock-backend-go/internal/service/clock"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

const defaultWeeklyHoursTarget = 40

type DashboardServiceImpl struct {
	clockRepo  clock.ClockEventRepository
	userRepo   user.UserRepository
	aggregator *clockService.Aggregator
	loc        *time.Location
	now        func() time.Time
}

func NewDashboardService(clockRepo clock.ClockEventRepository, userRepo user.UserRepository, loc *time.Location) dashboard.DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardServiceImpl{
		clockRepo:  clockRepo,
		userRepo:   userRepo,
		aggregator: clockService.NewAggregator(),
		loc:        loc,
		now:        time.Now,
	}
}

// getUserID extracts user_id from JWT claims
func (s *DashboardServiceImpl) getUserID(ctx context.Context) (string, error) {
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

func (s *DashboardServiceImpl) weeklyHoursTarget(ctx context.Context, userID string) int {
	userData, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || userData.WeeklyHoursTarget <= 0 {
		return defaultWeeklyHoursTarget
	}
	return userData.WeeklyHoursTarget
}

// fetchGrouped loads and date-buckets the user's events for [start, end].
func (s *DashboardServiceImpl) fetchGrouped(ctx context.Context, userID string, start, end time.Time) (map[string][]clock.ClockEvent, error) {
	events, err := s.clockRepo.ListByUserAndRange(ctx, userID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	return groupEventsByDate(events, s.loc), nil
}

func (s *DashboardServiceImpl) parseRange(filter dashboard.RangeFilter) (time.Time, time.Time) {
	start, _ := time.ParseInLocation("2006-01-02", filter.StartDate, s.loc)
	end, _ := time.ParseInLocation("2006-01-02", filter.EndDate, s.loc)
	return start, end
}

func (s *DashboardServiceImpl) today() time.Time {
	local := s.now().In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

// GetWorkMetrics implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetWorkMetrics(ctx context.Context, filter dashboard.RangeFilter) (dashboard.WorkMetrics, error) {
	if err := filter.Validate(); err != nil {
		return dashboard.WorkMetrics{}, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return dashboard.WorkMetrics{}, err
	}

	start, end := s.parseRange(filter)
	grouped, err := s.fetchGrouped(ctx, userID, start, end)
	if err != nil {
		return dashboard.WorkMetrics{}, err
	}

	target := s.weeklyHoursTarget(ctx, userID)
	return buildWorkMetrics(s.aggregator, grouped, start, end, target), nil
}

// GetDailyBreakdown implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDailyBreakdown(ctx context.Context, filter dashboard.RangeFilter) ([]dashboard.DailyBreakdownItem, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	start, end := s.parseRange(filter)
	grouped, err := s.fetchGrouped(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return buildDailyBreakdown(s.aggregator, grouped, start, end, s.today()), nil
}

// GetWeeklyBreakdown implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetWeeklyBreakdown(ctx context.Context, filter dashboard.MonthFilter) ([]dashboard.WeeklyBreakdownItem, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	month, _ := time.ParseInLocation("2006-01", filter.Month, s.loc)
	firstDay := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, s.loc)
	lastDay := firstDay.AddDate(0, 1, -1)

	grouped, err := s.fetchGrouped(ctx, userID, firstDay, lastDay)
	if err != nil {
		return nil, err
	}

	target := s.weeklyHoursTarget(ctx, userID)
	return buildWeeklyBreakdown(s.aggregator, grouped, month.Year(), month.Month(), target, s.loc), nil
}

// GetDashboard implements dashboard.DashboardService. Metrics and breakdowns
// for the current month are fetched concurrently.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	today := s.today()
	firstDay := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.loc)
	lastDay := firstDay.AddDate(0, 1, -1)

	rangeFilter := dashboard.RangeFilter{
		StartDate: firstDay.Format("2006-01-02"),
		EndDate:   lastDay.Format("2006-01-02"),
	}
	monthFilter := dashboard.MonthFilter{Month: firstDay.Format("2006-01")}

	var result dashboard.DashboardResponse

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		metrics, err := s.GetWorkMetrics(gctx, rangeFilter)
		if err != nil {
			return fmt.Errorf("failed to get work metrics: %w", err)
		}
		result.Metrics = metrics
		return nil
	})

	g.Go(func() error {
		daily, err := s.GetDailyBreakdown(gctx, rangeFilter)
		if err != nil {
			return fmt.Errorf("failed to get daily breakdown: %w", err)
		}
		result.Daily = daily
		return nil
	})

	g.Go(func() error {
		weekly, err := s.GetWeeklyBreakdown(gctx, monthFilter)
		if err != nil {
			return fmt.Errorf("failed to get weekly breakdown: %w", err)
		}
		result.Weekly = weekly
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return result, nil
}
