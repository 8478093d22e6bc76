package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectApplication rows carry a composite unique index so a user can
// hold at most one application per project, even under concurrent
// inserts.
type ProjectApplication struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_user_project;index"`
	ProjectID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_user_project;index"`
	Status            string           `gorm:"type:varchar(20);not null;index;default:'APPLIED'"`
	AssessmentScore   *decimal.Decimal `gorm:"type:decimal(5,2)"`
	AppliedAt         time.Time        `gorm:"not null"`
	AgreementSigned   bool             `gorm:"not null;default:false"`
	AgreementSignedAt *time.Time
	UpdatedAt         time.Time
}

// UserAssessment rows are immutable submission records, unique per
// (user, assessment) pair.
type UserAssessment struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_user_assessment;index"`
	AssessmentID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_user_assessment;index"`
	Score        decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Answers      string          `gorm:"type:text"`
	CompletedAt  time.Time       `gorm:"not null"`
}

type Certification struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SkillName    string          `gorm:"type:varchar(255);not null"`
	Score        decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	AssessmentID uuid.UUID       `gorm:"type:uuid;not null"`
	EarnedAt     time.Time       `gorm:"not null"`
}
