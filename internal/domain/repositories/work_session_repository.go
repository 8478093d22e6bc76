package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"growcore.backend/internal/domain/entities"
)

// WorkSessionRepository defines work session data operations
type WorkSessionRepository interface {
	Create(ctx context.Context, ws *entities.WorkSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.WorkSession, error)
	Update(ctx context.Context, ws *entities.WorkSession) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.WorkSession, error)
	TotalHoursBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}
