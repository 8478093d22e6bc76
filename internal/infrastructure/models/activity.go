package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(20);not null;default:'SYSTEM'"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

type WorkSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime   time.Time `gorm:"not null"`
	EndTime     *time.Time
	HoursWorked *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Description string           `gorm:"type:text"`
	CreatedAt   time.Time
}
