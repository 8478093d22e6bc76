package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Project struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title           string          `gorm:"type:varchar(255);not null"`
	Description     string          `gorm:"type:text"`
	Category        string          `gorm:"type:varchar(100);index"`
	TermsConditions string          `gorm:"type:text"`
	ScopeOfWork     string          `gorm:"type:text"`
	RequiredSkills  string          `gorm:"type:text"`
	MinimumScore    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:70.00"`
	Status          string          `gorm:"type:varchar(20);not null;index;default:'ACTIVE'"`
	ClientCRMURL    string          `gorm:"type:varchar(500)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Assessment struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProjectID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name             string          `gorm:"type:varchar(255);not null"`
	Description      string          `gorm:"type:text"`
	Questions        string          `gorm:"type:text"`
	MaxScore         decimal.Decimal `gorm:"type:decimal(5,2);not null;default:100.00"`
	TimeLimitMinutes int             `gorm:"not null;default:30"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
