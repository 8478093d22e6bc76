package repositories

import (
	"context"

	"github.com/google/uuid"
	"growcore.backend/internal/domain/entities"
)

// CertificationRepository defines certification data operations.
// Append-only; no uniqueness constraint.
type CertificationRepository interface {
	Create(ctx context.Context, cert *entities.Certification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Certification, error)
}
