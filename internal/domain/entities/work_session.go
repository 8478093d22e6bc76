package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkSession logs a span of work on a project
type WorkSession struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"userId"`
	ProjectID   uuid.UUID        `json:"projectId"`
	StartTime   time.Time        `json:"startTime"`
	EndTime     *time.Time       `json:"endTime,omitempty"`
	HoursWorked *decimal.Decimal `json:"hoursWorked,omitempty"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// StartWorkSessionInput represents input for starting a work session
type StartWorkSessionInput struct {
	ProjectID   uuid.UUID `json:"projectId" binding:"required"`
	Description string    `json:"description"`
}
