package notify

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/domain/events"
	"growcore.backend/internal/domain/repositories"
	"growcore.backend/pkg/logger"
)

// StoreSink persists workflow events as in-app notifications
type StoreSink struct {
	notifRepo repositories.NotificationRepository
}

// NewStoreSink creates a notification sink backed by the notification store
func NewStoreSink(notifRepo repositories.NotificationRepository) *StoreSink {
	return &StoreSink{notifRepo: notifRepo}
}

// Emit stores the event as an unread notification for its user
func (s *StoreSink) Emit(ctx context.Context, evt events.Event) error {
	n := &entities.Notification{
		ID:        uuid.New(),
		UserID:    evt.UserID,
		Title:     evt.Title,
		Message:   evt.Message,
		Type:      typeForKind(evt.Kind),
		CreatedAt: evt.OccurredAt,
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		return err
	}

	logger.Debug(ctx, "notification stored",
		zap.String("kind", string(evt.Kind)),
		zap.String("user_id", evt.UserID.String()))
	return nil
}

func typeForKind(kind events.Kind) entities.NotificationType {
	switch kind {
	case events.KindApplied:
		return entities.NotificationTypeApplication
	case events.KindScored, events.KindCertified:
		return entities.NotificationTypeAssessment
	default:
		return entities.NotificationTypeSystem
	}
}
