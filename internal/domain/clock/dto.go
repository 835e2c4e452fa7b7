package clock

import (
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

type RecordEventRequest struct {
	Type string `json:"type"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !EventType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of ENTRY_1, EXIT_1, ENTRY_2, EXIT_2, BREAK",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BreakDecision is the worker's answer to the break-before-exit prompt.
type BreakDecision string

const (
	// BreakTaken records a retroactive break acknowledgement: two BREAK
	// events at the current instant, then the exit.
	BreakTaken BreakDecision = "break_taken"
	// NoBreak shifts the exit timestamp forward by the mandatory break
	// compensation and marks it manual.
	NoBreak BreakDecision = "no_break"
)

type ClockOutRequest struct {
	Type     string `json:"type"`     // EXIT_1 or EXIT_2
	Decision string `json:"decision"` // empty, break_taken or no_break
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	t := EventType(r.Type)
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !t.IsExit() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be EXIT_1 or EXIT_2",
		})
	}

	if r.Decision != "" &&
		r.Decision != string(BreakTaken) &&
		r.Decision != string(NoBreak) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be break_taken or no_break",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEventsFilter struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`   // YYYY-MM-DD
}

func (f *ListEventsFilter) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(f.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, okTo := validator.IsValidDate(f.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockEventResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Timestamp       string  `json:"timestamp"`
	IsManual        bool    `json:"is_manual"`
	SourceRequestID *string `json:"source_request_id,omitempty"`
}

func ToClockEventResponse(e ClockEvent) ClockEventResponse {
	return ClockEventResponse{
		ID:              e.ID,
		Type:            string(e.Type),
		Timestamp:       e.Timestamp.Format(time.RFC3339),
		IsManual:        e.IsManual,
		SourceRequestID: e.SourceRequestID,
	}
}

// ClockStatusResponse drives the clock screen: which buttons to show, break
// state with live elapsed minutes, and today's running totals. LastEvent is
// the most recent event across all days, so the screen can show when the
// worker last clocked even on a fresh day.
type ClockStatusResponse struct {
	AvailableActions    []string             `json:"available_actions"`
	OnBreak             bool                 `json:"on_break"`
	BreakElapsedMinutes int                  `json:"break_elapsed_minutes"`
	WorkedMinutes       int                  `json:"worked_minutes"`
	BreakMinutes        int                  `json:"break_minutes"`
	NetMinutes          int                  `json:"net_minutes"`
	LastEvent           *ClockEventResponse  `json:"last_event,omitempty"`
	TodayEvents         []ClockEventResponse `json:"today_events"`
}
