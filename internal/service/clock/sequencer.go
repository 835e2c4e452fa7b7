package clock

import (
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
)

// Sequencer decides which clock actions are legal next given one day's event
// history. Pure: it never errors, malformed histories fall back to offering a
// first entry.
type Sequencer struct {
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// AvailableActions returns the event types the worker may record next.
// events must be today's events sorted ascending by timestamp. While a break
// is open the only possible action is finishing it, which is not an event
// type choice, so the list is empty.
func (s *Sequencer) AvailableActions(events []clock.ClockEvent, onBreak bool) []clock.EventType {
	if onBreak {
		return nil
	}

	if len(events) == 0 {
		return []clock.EventType{clock.EventEntry1}
	}

	last := events[len(events)-1]

	switch last.Type {
	case clock.EventEntry1:
		return []clock.EventType{clock.EventBreak, clock.EventExit1}

	case clock.EventExit1:
		// Odd exit count means the first-shift cycle just closed, so the
		// second shift is next; even count means a full double cycle closed
		// and the pattern starts over. Supports unlimited cycles per day.
		if countType(events, clock.EventExit1)%2 == 1 {
			return []clock.EventType{clock.EventEntry2}
		}
		return []clock.EventType{clock.EventEntry1}

	case clock.EventEntry2:
		return []clock.EventType{clock.EventBreak, clock.EventExit2}

	case clock.EventExit2:
		if countType(events, clock.EventExit2)%2 == 1 {
			return []clock.EventType{clock.EventEntry1}
		}
		return []clock.EventType{clock.EventEntry2}

	case clock.EventBreak:
		// A closed break inside a shift: the exit on offer matches whichever
		// entry opened the current segment.
		switch lastEntryBefore(events, len(events)-1) {
		case clock.EventEntry2:
			return []clock.EventType{clock.EventExit2}
		case clock.EventEntry1:
			return []clock.EventType{clock.EventExit1}
		}
		return []clock.EventType{clock.EventEntry1}
	}

	return []clock.EventType{clock.EventEntry1}
}

// NeedsBreakDecision reports whether recording exitType now would close a
// shift segment that contains no break, which triggers the break-before-exit
// prompt.
func (s *Sequencer) NeedsBreakDecision(events []clock.ClockEvent, exitType clock.EventType) bool {
	if !exitType.IsExit() {
		return false
	}

	entryType := clock.EventEntry1
	if exitType == clock.EventExit2 {
		entryType = clock.EventEntry2
	}

	// The segment runs from the most recent matching entry to the end of the
	// list. With no matching entry the whole day is the segment.
	segmentStart := 0
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == entryType {
			segmentStart = i + 1
			break
		}
	}

	for _, e := range events[segmentStart:] {
		if e.Type == clock.EventBreak {
			return false
		}
	}
	return true
}

func countType(events []clock.ClockEvent, t clock.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// lastEntryBefore returns the type of the most recent entry event strictly
// before index i, or "" when the day has none.
func lastEntryBefore(events []clock.ClockEvent, i int) clock.EventType {
	for j := i - 1; j >= 0; j-- {
		if events[j].Type.IsEntry() {
			return events[j].Type
		}
	}
	return ""
}
