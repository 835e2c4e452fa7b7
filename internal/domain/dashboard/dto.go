package dashboard

import "github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"

// WorkMetrics is the period-level projection of clock history against the
// user's weekly hours target. Recomputed on every query, never persisted.
type WorkMetrics struct {
	WorkedMinutes     int     `json:"worked_minutes"`
	BreakMinutes      int     `json:"break_minutes"`
	OvertimeMinutes   int     `json:"overtime_minutes"` // signed, negative = deficit
	ExpectedMinutes   int     `json:"expected_minutes"`
	DaysWorked        int     `json:"days_worked"`
	ExpectedDays      int     `json:"expected_days"`
	AttendanceRate    int     `json:"attendance_rate"` // percent, rounded
	AverageDailyHours float64 `json:"average_daily_hours"`
	WorkedFormatted   string  `json:"worked_formatted"` // "Xh Ym"
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
}

type DailyBreakdownItem struct {
	Date          string `json:"date"`
	WorkedMinutes int    `json:"worked_minutes"`
	BreakMinutes  int    `json:"break_minutes"`
	IsToday       bool   `json:"is_today"`
}

type WeeklyBreakdownItem struct {
	WeekNumber      int    `json:"week_number"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	WorkedMinutes   int    `json:"worked_minutes"`
	BreakMinutes    int    `json:"break_minutes"`
	OvertimeMinutes int    `json:"overtime_minutes"` // positive only in the weekly view
}

// DashboardResponse is the combined payload for the dashboard screen.
type DashboardResponse struct {
	Metrics WorkMetrics          `json:"metrics"`
	Daily   []DailyBreakdownItem `json:"daily"`
	Weekly  []WeeklyBreakdownItem `json:"weekly"`
}

type RangeFilter struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthFilter struct {
	Month string `json:"month"` // YYYY-MM
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(f.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
