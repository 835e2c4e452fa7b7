package clock

import (
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
)

// DayTotals is one day's aggregation result, in whole minutes.
type DayTotals struct {
	WorkedMinutes int
	BreakMinutes  int
	NetMinutes    int // worked minus break, floored at zero
}

// Aggregator turns a day's typed events into worked/break minutes. Pure and
// deterministic; it never mutates its input and never returns negatives.
type Aggregator struct {
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// DailyTotals computes totals for one day's events, sorted ascending by
// timestamp. Entry/exit pairing is positional: the i-th entry pairs with the
// i-th exit regardless of ENTRY_1/ENTRY_2 type, which tolerates the
// alternating-shift sequencing. Unmatched entries and exits contribute
// nothing, as does a trailing open break (its live elapsed time belongs to
// the caller's session state, not to this function).
func (a *Aggregator) DailyTotals(events []clock.ClockEvent) DayTotals {
	var entries, exits []clock.ClockEvent
	for _, e := range events {
		switch {
		case e.Type.IsEntry():
			entries = append(entries, e)
		case e.Type.IsExit():
			exits = append(exits, e)
		}
	}

	var worked time.Duration
	pairs := len(entries)
	if len(exits) < pairs {
		pairs = len(exits)
	}
	for i := 0; i < pairs; i++ {
		d := exits[i].Timestamp.Sub(entries[i].Timestamp)
		if d > 0 {
			worked += d
		}
	}

	var breaks time.Duration
	for _, interval := range clock.PairBreaks(events) {
		if interval.End == nil {
			continue
		}
		if d := interval.Duration(time.Time{}); d > 0 {
			breaks += d
		}
	}

	workedMinutes := int(worked / time.Minute)
	breakMinutes := int(breaks / time.Minute)

	net := workedMinutes - breakMinutes
	if net < 0 {
		net = 0
	}

	return DayTotals{
		WorkedMinutes: workedMinutes,
		BreakMinutes:  breakMinutes,
		NetMinutes:    net,
	}
}
