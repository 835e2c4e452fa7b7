package clock

import "time"

// EventType is the closed set of clock event kinds. ENTRY_2/EXIT_2 cover the
// second shift of a split working day; BREAK events come in start/end pairs.
type EventType string

const (
	EventEntry1 EventType = "ENTRY_1"
	EventExit1  EventType = "EXIT_1"
	EventEntry2 EventType = "ENTRY_2"
	EventExit2  EventType = "EXIT_2"
	EventBreak  EventType = "BREAK"
)

// IsValid reports whether t is one of the known event types.
func (t EventType) IsValid() bool {
	switch t {
	case EventEntry1, EventExit1, EventEntry2, EventExit2, EventBreak:
		return true
	}
	return false
}

// IsEntry reports whether t opens a shift segment.
func (t EventType) IsEntry() bool {
	return t == EventEntry1 || t == EventEntry2
}

// IsExit reports whether t closes a shift segment.
func (t EventType) IsExit() bool {
	return t == EventExit1 || t == EventExit2
}

type ClockEvent struct {
	ID              string
	UserID          string
	Type            EventType
	Timestamp       time.Time
	IsManual        bool    // true for approved corrections and shifted timestamps
	SourceRequestID *string // set only by request approval
	CreatedAt       time.Time
}

// BreakInterval is one break period derived from a pair of BREAK events.
// End is nil while the break is still open.
type BreakInterval struct {
	Start time.Time
	End   *time.Time
}

// Duration returns the closed interval length, or the elapsed time against
// now for an open interval.
func (b BreakInterval) Duration(now time.Time) time.Duration {
	if b.End != nil {
		return b.End.Sub(b.Start)
	}
	return now.Sub(b.Start)
}

// PairBreaks folds the day's BREAK events into intervals, pairing them off in
// chronological order. Events must already be sorted ascending. A trailing
// unmatched BREAK becomes an open interval.
func PairBreaks(events []ClockEvent) []BreakInterval {
	var intervals []BreakInterval
	var open *time.Time

	for _, e := range events {
		if e.Type != EventBreak {
			continue
		}
		if open == nil {
			start := e.Timestamp
			open = &start
			continue
		}
		end := e.Timestamp
		intervals = append(intervals, BreakInterval{Start: *open, End: &end})
		open = nil
	}

	if open != nil {
		intervals = append(intervals, BreakInterval{Start: *open})
	}

	return intervals
}

// OpenBreak returns the unmatched break interval, if any.
func OpenBreak(events []ClockEvent) *BreakInterval {
	intervals := PairBreaks(events)
	if len(intervals) == 0 {
		return nil
	}
	last := intervals[len(intervals)-1]
	if last.End == nil {
		return &last
	}
	return nil
}
