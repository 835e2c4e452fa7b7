package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/dashboard"
	clockService "github.com/clockwork-hr/timeclock-backend-go/internal/service/clock"
)

const dateKeyLayout = "2006-01-02"

// groupEventsByDate buckets events by their local calendar date. Events are
// assumed sorted ascending, so each bucket stays sorted too. A shift spanning
// midnight buckets each event to its own day; no rollover correction is
// applied.
func groupEventsByDate(events []clock.ClockEvent, loc *time.Location) map[string][]clock.ClockEvent {
	grouped := make(map[string][]clock.ClockEvent)
	for _, e := range events {
		key := e.Timestamp.In(loc).Format(dateKeyLayout)
		grouped[key] = append(grouped[key], e)
	}
	return grouped
}

// buildDailyBreakdown emits one item per calendar date in [start, end]
// inclusive, zero-filled for days without events.
func buildDailyBreakdown(
	agg *clockService.Aggregator,
	grouped map[string][]clock.ClockEvent,
	start, end, today time.Time,
) []dashboard.DailyBreakdownItem {
	todayKey := today.Format(dateKeyLayout)

	var items []dashboard.DailyBreakdownItem
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateKeyLayout)
		totals := agg.DailyTotals(grouped[key])

		items = append(items, dashboard.DailyBreakdownItem{
			Date:          key,
			WorkedMinutes: totals.NetMinutes,
			BreakMinutes:  totals.BreakMinutes,
			IsToday:       key == todayKey,
		})
	}
	return items
}

type week struct {
	start time.Time
	end   time.Time // inclusive
}

// weeksInMonth partitions a month into Monday-start weeks. The first and last
// weeks are clipped to the month's first and last day.
func weeksInMonth(year int, month time.Month, loc *time.Location) []week {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	lastDay := firstDay.AddDate(0, 1, -1)

	weekStart := firstDay
	offset := (int(firstDay.Weekday()) + 6) % 7 // days since Monday
	weekStart = weekStart.AddDate(0, 0, -offset)
	if weekStart.Before(firstDay) {
		weekStart = firstDay
	}

	var weeks []week
	for !weekStart.After(lastDay) {
		// End of the Monday-start week containing weekStart.
		sinceMonday := (int(weekStart.Weekday()) + 6) % 7
		weekEnd := weekStart.AddDate(0, 0, 6-sinceMonday)
		if weekEnd.After(lastDay) {
			weekEnd = lastDay
		}

		weeks = append(weeks, week{start: weekStart, end: weekEnd})
		weekStart = weekEnd.AddDate(0, 0, 1)
	}
	return weeks
}

// buildWeeklyBreakdown sums per-day totals across each clipped week of the
// month. Weekly overtime only reports a surplus, never a deficit.
func buildWeeklyBreakdown(
	agg *clockService.Aggregator,
	grouped map[string][]clock.ClockEvent,
	year int, month time.Month,
	weeklyHoursTarget int,
	loc *time.Location,
) []dashboard.WeeklyBreakdownItem {
	var items []dashboard.WeeklyBreakdownItem

	for i, w := range weeksInMonth(year, month, loc) {
		workedMinutes := 0
		breakMinutes := 0

		for d := w.start; !d.After(w.end); d = d.AddDate(0, 0, 1) {
			totals := agg.DailyTotals(grouped[d.Format(dateKeyLayout)])
			workedMinutes += totals.NetMinutes
			breakMinutes += totals.BreakMinutes
		}

		overtime := workedMinutes - weeklyHoursTarget*60
		if overtime < 0 {
			overtime = 0
		}

		items = append(items, dashboard.WeeklyBreakdownItem{
			WeekNumber:      i + 1,
			StartDate:       w.start.Format(dateKeyLayout),
			EndDate:         w.end.Format(dateKeyLayout),
			WorkedMinutes:   workedMinutes,
			BreakMinutes:    breakMinutes,
			OvertimeMinutes: overtime,
		})
	}
	return items
}

// buildWorkMetrics projects the period's grouped events against the weekly
// hours target. The target is prorated uniformly over all 7 weekdays.
func buildWorkMetrics(
	agg *clockService.Aggregator,
	grouped map[string][]clock.ClockEvent,
	start, end time.Time,
	weeklyHoursTarget int,
) dashboard.WorkMetrics {
	workedMinutes := 0
	breakMinutes := 0
	daysWorked := 0

	for _, dayEvents := range grouped {
		totals := agg.DailyTotals(dayEvents)
		if totals.NetMinutes > 0 {
			workedMinutes += totals.NetMinutes
			breakMinutes += totals.BreakMinutes
			daysWorked++
		}
	}

	// Rounded so DST-shortened days still count whole.
	expectedDays := int(math.Round(end.Sub(start).Hours()/24)) + 1
	expectedMinutes := int(math.Round(float64(expectedDays) * float64(weeklyHoursTarget) / 7.0 * 60.0))

	attendanceRate := 0
	if expectedDays > 0 {
		attendanceRate = int(math.Round(float64(daysWorked) / float64(expectedDays) * 100.0))
	}

	averageDailyHours := 0.0
	if daysWorked > 0 {
		averageDailyHours = math.Round(float64(workedMinutes)/60.0/float64(daysWorked)*10) / 10
	}

	return dashboard.WorkMetrics{
		WorkedMinutes:     workedMinutes,
		BreakMinutes:      breakMinutes,
		OvertimeMinutes:   workedMinutes - expectedMinutes,
		ExpectedMinutes:   expectedMinutes,
		DaysWorked:        daysWorked,
		ExpectedDays:      expectedDays,
		AttendanceRate:    attendanceRate,
		AverageDailyHours: averageDailyHours,
		WorkedFormatted:   formatWorkHours(workedMinutes),
		StartDate:         start.Format(dateKeyLayout),
		EndDate:           end.Format(dateKeyLayout),
	}
}

// formatWorkHours formats minutes to "Xh Ym" format
func formatWorkHours(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}
