package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/infrastructure/models"
)

// UserAssessmentRepository implements submission record operations
type UserAssessmentRepository struct {
	db *gorm.DB
}

// NewUserAssessmentRepository creates a new user assessment repository
func NewUserAssessmentRepository(db *gorm.DB) *UserAssessmentRepository {
	return &UserAssessmentRepository{db: db}
}

// Create inserts a submission record. The unique index on
// (user_id, assessment_id) rejects resubmission; a violation maps to
// ErrAlreadyCompleted.
func (r *UserAssessmentRepository) Create(ctx context.Context, ua *entities.UserAssessment) error {
	m := &models.UserAssessment{
		ID:           ua.ID,
		UserID:       ua.UserID,
		AssessmentID: ua.AssessmentID,
		Score:        ua.Score,
		Answers:      ua.Answers,
		CompletedAt:  ua.CompletedAt,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyCompleted
		}
		return err
	}
	return nil
}

// GetByUserAndAssessment gets a user's submission record for an assessment
func (r *UserAssessmentRepository) GetByUserAndAssessment(ctx context.Context, userID, assessmentID uuid.UUID) (*entities.UserAssessment, error) {
	var m models.UserAssessment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userAssessmentToEntity(&m), nil
}

// ExistsByUserAndAssessment reports whether the user already submitted
func (r *UserAssessmentRepository) ExistsByUserAndAssessment(ctx context.Context, userID, assessmentID uuid.UUID) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.UserAssessment{}).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser lists a user's submission records, newest first
func (r *UserAssessmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserAssessment, error) {
	var ms []models.UserAssessment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	records := make([]*entities.UserAssessment, 0, len(ms))
	for i := range ms {
		records = append(records, userAssessmentToEntity(&ms[i]))
	}
	return records, nil
}

func userAssessmentToEntity(m *models.UserAssessment) *entities.UserAssessment {
	return &entities.UserAssessment{
		ID:           m.ID,
		UserID:       m.UserID,
		AssessmentID: m.AssessmentID,
		Score:        m.Score,
		Answers:      m.Answers,
		CompletedAt:  m.CompletedAt,
	}
}
