package events

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies a workflow event
type Kind string

const (
	KindWelcome             Kind = "welcome"
	KindApplied             Kind = "applied"
	KindScored              Kind = "scored"
	KindCertified           Kind = "certified"
	KindEmailVerified       Kind = "email_verified"
	KindVerificationUpdated Kind = "verification_updated"
)

// Event is a domain event produced by a workflow operation. Operations
// return events instead of calling the notification sink directly; a
// dispatcher delivers them best-effort after the operation commits.
type Event struct {
	Kind       Kind
	UserID     uuid.UUID
	Title      string
	Message    string
	Meta       map[string]string
	OccurredAt time.Time
}

// New builds an event stamped with the current time
func New(kind Kind, userID uuid.UUID, title, message string) Event {
	return Event{
		Kind:       kind,
		UserID:     userID,
		Title:      title,
		Message:    message,
		OccurredAt: time.Now(),
	}
}
