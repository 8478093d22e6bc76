package repositories

import (
	"context"

	"github.com/google/uuid"
	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/domain/events"
)

// NotificationRepository defines notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, n *entities.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

// NotificationSink receives workflow events for downstream delivery.
// Best-effort: callers must never fail an operation on a sink error.
type NotificationSink interface {
	Emit(ctx context.Context, evt events.Event) error
}
