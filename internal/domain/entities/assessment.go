package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Assessment represents a scored quiz attached to a project. Questions holds
// the raw JSON definition as stored; correct answers inside it must never
// reach a caller-facing view.
type Assessment struct {
	ID               uuid.UUID       `json:"id"`
	ProjectID        uuid.UUID       `json:"projectId"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Questions        string          `json:"-"`
	MaxScore         decimal.Decimal `json:"maxScore"`
	TimeLimitMinutes int             `json:"timeLimitMinutes"`
}

// AssessmentQuestion is one entry of the stored question definition
type AssessmentQuestion struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

// QuestionView is a question with the correct answer redacted
type QuestionView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

// AssessmentResponse is the caller-facing assessment view with completion
// state for the requesting user
type AssessmentResponse struct {
	ID               uuid.UUID        `json:"id"`
	ProjectID        uuid.UUID        `json:"projectId"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Questions        []QuestionView   `json:"questions,omitempty"`
	MaxScore         decimal.Decimal  `json:"maxScore"`
	TimeLimitMinutes int              `json:"timeLimitMinutes"`
	IsCompleted      bool             `json:"isCompleted"`
	UserScore        *decimal.Decimal `json:"userScore,omitempty"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty"`
}

// SubmitAssessmentInput carries a caller's answers keyed "question_<index>"
type SubmitAssessmentInput struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// SubmitAssessmentResult is returned from a successful submission
type SubmitAssessmentResult struct {
	AssessmentID uuid.UUID       `json:"assessmentId"`
	Score        decimal.Decimal `json:"score"`
	Certified    bool            `json:"certified"`
	CompletedAt  time.Time       `json:"completedAt"`
}

// UserAssessment records a user's single submission for an assessment.
// Immutable after creation; resubmission is rejected, never overwritten.
type UserAssessment struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	AssessmentID uuid.UUID       `json:"assessmentId"`
	Score        decimal.Decimal `json:"score"`
	Answers      string          `json:"-"`
	CompletedAt  time.Time       `json:"completedAt"`
}
