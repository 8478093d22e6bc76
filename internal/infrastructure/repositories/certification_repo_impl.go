package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/infrastructure/models"
)

// CertificationRepository implements certification data operations
type CertificationRepository struct {
	db *gorm.DB
}

// NewCertificationRepository creates a new certification repository
func NewCertificationRepository(db *gorm.DB) *CertificationRepository {
	return &CertificationRepository{db: db}
}

// Create appends a certification record
func (r *CertificationRepository) Create(ctx context.Context, cert *entities.Certification) error {
	m := &models.Certification{
		ID:           cert.ID,
		UserID:       cert.UserID,
		SkillName:    cert.SkillName,
		Score:        cert.Score,
		AssessmentID: cert.AssessmentID,
		EarnedAt:     cert.EarnedAt,
	}
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// ListByUser lists a user's certifications, newest first
func (r *CertificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Certification, error) {
	var ms []models.Certification
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	certs := make([]*entities.Certification, 0, len(ms))
	for i := range ms {
		m := ms[i]
		certs = append(certs, &entities.Certification{
			ID:           m.ID,
			UserID:       m.UserID,
			SkillName:    m.SkillName,
			Score:        m.Score,
			AssessmentID: m.AssessmentID,
			EarnedAt:     m.EarnedAt,
		})
	}
	return certs, nil
}
