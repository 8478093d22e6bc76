package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus represents project lifecycle status
type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "ACTIVE"
	ProjectStatusClosed ProjectStatus = "CLOSED"
	ProjectStatusDraft  ProjectStatus = "DRAFT"
)

// Project represents a marketplace project definition. Published projects
// are immutable except for status and their assessments.
type Project struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	TermsConditions string          `json:"termsConditions,omitempty"`
	ScopeOfWork     string          `json:"scopeOfWork,omitempty"`
	RequiredSkills  []string        `json:"requiredSkills"`
	MinimumScore    decimal.Decimal `json:"minimumScore"`
	Status          ProjectStatus   `json:"status"`
	ClientCRMURL    string          `json:"clientCrmUrl,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ProjectResponse is the project view enriched with caller-specific
// application state.
type ProjectResponse struct {
	Project
	HasApplied        bool                  `json:"hasApplied"`
	ApplicationStatus ApplicationStatus     `json:"applicationStatus,omitempty"`
	AppliedAt         *time.Time            `json:"appliedAt,omitempty"`
	AssessmentScore   *decimal.Decimal      `json:"assessmentScore,omitempty"`
	Assessments       []*AssessmentResponse `json:"assessments,omitempty"`
}

// ProjectStats aggregates application counts for a project
type ProjectStats struct {
	TotalApplications     int64 `json:"totalApplications"`
	AcceptedApplications  int64 `json:"acceptedApplications"`
	CompletedApplications int64 `json:"completedApplications"`
}
