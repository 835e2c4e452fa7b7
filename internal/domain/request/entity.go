package request

import (
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// CorrectionRequest is a worker-submitted request for a missed clock event.
// It transitions exactly once out of pending; approval materializes a manual
// clock event at the requested time.
type CorrectionRequest struct {
	ID          string
	UserID      string
	Type        clock.EventType
	RequestedAt time.Time
	Reason      string
	Status      Status
	ReviewerID  *string
	ReviewedAt  *time.Time
	ReviewNotes *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *CorrectionRequest) IsPending() bool {
	return r.Status == StatusPending
}
