package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes notifications
type NotificationType string

const (
	NotificationTypeSystem      NotificationType = "SYSTEM"
	NotificationTypeApplication NotificationType = "APPLICATION"
	NotificationTypeAssessment  NotificationType = "ASSESSMENT"
)

// Notification is a stored in-app notification for a user
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}
