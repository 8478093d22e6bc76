package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/domain/repositories"
)

// CertificationUsecase mints certification records. Issuance is
// unconditional once called: the qualifying-score gate belongs to the
// submission workflow, and records are append-only with no uniqueness
// guard.
type CertificationUsecase struct {
	certRepo repositories.CertificationRepository
}

// NewCertificationUsecase creates a new certification usecase
func NewCertificationUsecase(certRepo repositories.CertificationRepository) *CertificationUsecase {
	return &CertificationUsecase{certRepo: certRepo}
}

// Issue creates a certification for the user. The skill name is taken from
// the assessment name.
func (u *CertificationUsecase) Issue(ctx context.Context, userID uuid.UUID, assessment *entities.Assessment, score decimal.Decimal) (*entities.Certification, error) {
	cert := &entities.Certification{
		ID:           uuid.New(),
		UserID:       userID,
		SkillName:    assessment.Name,
		Score:        score,
		AssessmentID: assessment.ID,
		EarnedAt:     time.Now(),
	}
	if err := u.certRepo.Create(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

// ListForUser returns the user's certifications, newest first
func (u *CertificationUsecase) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Certification, error) {
	return u.certRepo.ListByUser(ctx, userID)
}
