package usecases

import (
	"context"

	"github.com/google/uuid"

	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/domain/repositories"
)

// NotificationUsecase exposes the in-app notification read model
type NotificationUsecase struct {
	notifRepo repositories.NotificationRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notifRepo repositories.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notifRepo: notifRepo}
}

// List returns the user's notifications, newest first
func (u *NotificationUsecase) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, error) {
	return u.notifRepo.ListByUser(ctx, userID, limit, offset)
}

// UnreadCount returns the number of unread notifications
func (u *NotificationUsecase) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return u.notifRepo.CountUnread(ctx, userID)
}

// MarkRead marks one of the user's notifications as read. Notifications
// belonging to other users read as not found.
func (u *NotificationUsecase) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return u.notifRepo.MarkRead(ctx, id, userID)
}
