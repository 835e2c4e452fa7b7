package clock

import (
	"testing"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
)

func eventsOf(types ...clock.EventType) []clock.ClockEvent {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	events := make([]clock.ClockEvent, len(types))
	for i, t := range types {
		events[i] = clock.ClockEvent{
			Type:      t,
			Timestamp: base.Add(time.Duration(i) * 30 * time.Minute),
		}
	}
	return events
}

func typesEqual(got []clock.EventType, want []clock.EventType) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSequencer_AvailableActions(t *testing.T) {
	s := NewSequencer()

	cases := []struct {
		name    string
		history []clock.EventType
		onBreak bool
		want    []clock.EventType
	}{
		{
			name: "empty day offers first entry",
			want: []clock.EventType{clock.EventEntry1},
		},
		{
			name:    "after first entry",
			history: []clock.EventType{clock.EventEntry1},
			want:    []clock.EventType{clock.EventBreak, clock.EventExit1},
		},
		{
			name:    "after first exit the second shift opens",
			history: []clock.EventType{clock.EventEntry1, clock.EventExit1},
			want:    []clock.EventType{clock.EventEntry2},
		},
		{
			name:    "after second entry",
			history: []clock.EventType{clock.EventEntry1, clock.EventExit1, clock.EventEntry2},
			want:    []clock.EventType{clock.EventBreak, clock.EventExit2},
		},
		{
			name: "after second exit the pattern restarts",
			history: []clock.EventType{
				clock.EventEntry1, clock.EventExit1,
				clock.EventEntry2, clock.EventExit2,
			},
			want: []clock.EventType{clock.EventEntry1},
		},
		{
			name: "second full cycle alternates the same way",
			history: []clock.EventType{
				clock.EventEntry1, clock.EventExit1,
				clock.EventEntry2, clock.EventExit2,
				clock.EventEntry1, clock.EventExit1,
			},
			want: []clock.EventType{clock.EventEntry1},
		},
		{
			name: "third first-shift exit opens the second shift again",
			history: []clock.EventType{
				clock.EventEntry1, clock.EventExit1,
				clock.EventEntry2, clock.EventExit2,
				clock.EventEntry1, clock.EventExit1,
				clock.EventEntry1, clock.EventExit1,
			},
			want: []clock.EventType{clock.EventEntry2},
		},
		{
			name:    "closed break in first shift offers first exit",
			history: []clock.EventType{clock.EventEntry1, clock.EventBreak, clock.EventBreak},
			want:    []clock.EventType{clock.EventExit1},
		},
		{
			name: "closed break in second shift offers second exit",
			history: []clock.EventType{
				clock.EventEntry1, clock.EventExit1,
				clock.EventEntry2, clock.EventBreak, clock.EventBreak,
			},
			want: []clock.EventType{clock.EventExit2},
		},
		{
			name:    "break with no prior entry falls back to first entry",
			history: []clock.EventType{clock.EventBreak, clock.EventBreak},
			want:    []clock.EventType{clock.EventEntry1},
		},
		{
			name:    "open break blocks everything",
			history: []clock.EventType{clock.EventEntry1, clock.EventBreak},
			onBreak: true,
			want:    nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := s.AvailableActions(eventsOf(c.history...), c.onBreak)
			if !typesEqual(got, c.want) {
				t.Errorf("AvailableActions(%v, onBreak=%v) = %v, want %v", c.history, c.onBreak, got, c.want)
			}
		})
	}
}

func TestSequencer_AvailableActions_DoesNotMutate(t *testing.T) {
	s := NewSequencer()
	events := eventsOf(clock.EventEntry1, clock.EventBreak, clock.EventBreak)

	first := s.AvailableActions(events, false)
	second := s.AvailableActions(events, false)

	if !typesEqual(first, second) {
		t.Errorf("repeated calls disagree: %v vs %v", first, second)
	}
}

func TestSequencer_NeedsBreakDecision(t *testing.T) {
	s := NewSequencer()

	cases := []struct {
		name     string
		history  []clock.EventType
		exitType clock.EventType
		want     bool
	}{
		{
			name:     "no break in first segment",
			history:  []clock.EventType{clock.EventEntry1},
			exitType: clock.EventExit1,
			want:     true,
		},
		{
			name:     "break already taken in first segment",
			history:  []clock.EventType{clock.EventEntry1, clock.EventBreak, clock.EventBreak},
			exitType: clock.EventExit1,
			want:     false,
		},
		{
			name: "second segment without a break still prompts",
			history: []clock.EventType{
				clock.EventEntry1, clock.EventBreak, clock.EventBreak, clock.EventExit1,
				clock.EventEntry2,
			},
			exitType: clock.EventExit2,
			want:     true,
		},
		{
			name: "break in the second segment clears the prompt",
			history: []clock.EventType{
				clock.EventEntry1, clock.EventExit1,
				clock.EventEntry2, clock.EventBreak, clock.EventBreak,
			},
			exitType: clock.EventExit2,
			want:     false,
		},
		{
			name: "earlier segment break does not cover a new first segment",
			history: []clock.EventType{
				clock.EventEntry1, clock.EventBreak, clock.EventBreak, clock.EventExit1,
				clock.EventEntry2, clock.EventExit2,
				clock.EventEntry1,
			},
			exitType: clock.EventExit1,
			want:     true,
		},
		{
			name:     "non-exit types never prompt",
			history:  []clock.EventType{clock.EventEntry1},
			exitType: clock.EventBreak,
			want:     false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := s.NeedsBreakDecision(eventsOf(c.history...), c.exitType)
			if got != c.want {
				t.Errorf("NeedsBreakDecision(%v, %s) = %v, want %v", c.history, c.exitType, got, c.want)
			}
		})
	}
}
