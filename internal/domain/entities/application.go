package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApplicationStatus represents application workflow state
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "APPLIED"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusCompleted ApplicationStatus = "COMPLETED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

// CanTransitionTo reports whether the state machine allows moving from s to
// next. Records only move forward: APPLIED -> ACCEPTED -> COMPLETED, with
// REJECTED reachable from APPLIED or ACCEPTED.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch s {
	case ApplicationStatusApplied:
		return next == ApplicationStatusAccepted || next == ApplicationStatusRejected
	case ApplicationStatusAccepted:
		return next == ApplicationStatusCompleted || next == ApplicationStatusRejected
	default:
		return false
	}
}

// Valid reports whether s is a known status value
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusAccepted,
		ApplicationStatusCompleted, ApplicationStatusRejected:
		return true
	}
	return false
}

// ProjectApplication is a user's application to a project, unique per
// (user, project) pair
type ProjectApplication struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"userId"`
	ProjectID         uuid.UUID         `json:"projectId"`
	Status            ApplicationStatus `json:"status"`
	AssessmentScore   *decimal.Decimal  `json:"assessmentScore,omitempty"`
	AppliedAt         time.Time         `json:"appliedAt"`
	AgreementSigned   bool              `json:"agreementSigned"`
	AgreementSignedAt *time.Time        `json:"agreementSignedAt,omitempty"`
}
