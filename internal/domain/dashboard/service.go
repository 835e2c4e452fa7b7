package dashboard

import "context"

type DashboardService interface {
	GetWorkMetrics(ctx context.Context, filter RangeFilter) (WorkMetrics, error)
	GetDailyBreakdown(ctx context.Context, filter RangeFilter) ([]DailyBreakdownItem, error)
	GetWeeklyBreakdown(ctx context.Context, filter MonthFilter) ([]WeeklyBreakdownItem, error)

	// GetDashboard combines metrics and breakdowns for the current month.
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
