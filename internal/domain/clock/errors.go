package clock

import "errors"

// Clock domain errors
var (
	ErrActionNotAvailable    = errors.New("this clock action is not available right now")
	ErrBreakDecisionRequired = errors.New("clocking out requires a break decision")
	ErrInvalidBreakDecision  = errors.New("unknown break decision")
	ErrBreakAlreadyOpen      = errors.New("a break is already in progress")
	ErrNoOpenBreak           = errors.New("no break is in progress")
)
