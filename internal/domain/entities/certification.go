package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Certification is an earned skill credential. Append-only: a user may hold
// several certifications, including repeats from distinct assessments.
type Certification struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	SkillName    string          `json:"skillName"`
	Score        decimal.Decimal `json:"score"`
	AssessmentID uuid.UUID       `json:"assessmentId"`
	EarnedAt     time.Time       `json:"earnedAt"`
}
