package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/infrastructure/models"
)

// ApplicationRepository implements project application data operations
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application. The unique index on (user_id, project_id)
// is the authority on duplicates; a violation maps to ErrAlreadyApplied so
// concurrent applies resolve to exactly one success.
func (r *ApplicationRepository) Create(ctx context.Context, app *entities.ProjectApplication) error {
	m := applicationToModel(app)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

// GetByID gets an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ProjectApplication, error) {
	var m models.ProjectApplication
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return applicationToEntity(&m), nil
}

// GetByUserAndProject gets the application a user holds for a project
func (r *ApplicationRepository) GetByUserAndProject(ctx context.Context, userID, projectID uuid.UUID) (*entities.ProjectApplication, error) {
	var m models.ProjectApplication
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return applicationToEntity(&m), nil
}

// ExistsByUserAndProject reports whether the user already applied to the project
func (r *ApplicationRepository) ExistsByUserAndProject(ctx context.Context, userID, projectID uuid.UUID) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.ProjectApplication{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser lists a user's applications, newest first
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ProjectApplication, error) {
	var ms []models.ProjectApplication
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return applicationsToEntities(ms), nil
}

// ListByUserAndStatus lists a user's applications in one status, newest first
func (r *ApplicationRepository) ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status entities.ApplicationStatus) ([]*entities.ProjectApplication, error) {
	var ms []models.ProjectApplication
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(status)).
		Order("applied_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return applicationsToEntities(ms), nil
}

// ListByProject lists all applications for a project
func (r *ApplicationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.ProjectApplication, error) {
	var ms []models.ProjectApplication
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("applied_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return applicationsToEntities(ms), nil
}

// UpdateStatus moves an application from one status to another. The WHERE
// clause on the current status makes the transition atomic: a concurrent
// update that got there first leaves zero rows affected.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.ApplicationStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.ProjectApplication{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidTransition
	}
	return nil
}

func applicationToModel(app *entities.ProjectApplication) *models.ProjectApplication {
	return &models.ProjectApplication{
		ID:                app.ID,
		UserID:            app.UserID,
		ProjectID:         app.ProjectID,
		Status:            string(app.Status),
		AssessmentScore:   app.AssessmentScore,
		AppliedAt:         app.AppliedAt,
		AgreementSigned:   app.AgreementSigned,
		AgreementSignedAt: app.AgreementSignedAt,
	}
}

func applicationToEntity(m *models.ProjectApplication) *entities.ProjectApplication {
	return &entities.ProjectApplication{
		ID:                m.ID,
		UserID:            m.UserID,
		ProjectID:         m.ProjectID,
		Status:            entities.ApplicationStatus(m.Status),
		AssessmentScore:   m.AssessmentScore,
		AppliedAt:         m.AppliedAt,
		AgreementSigned:   m.AgreementSigned,
		AgreementSignedAt: m.AgreementSignedAt,
	}
}

func applicationsToEntities(ms []models.ProjectApplication) []*entities.ProjectApplication {
	apps := make([]*entities.ProjectApplication, 0, len(ms))
	for i := range ms {
		apps = append(apps, applicationToEntity(&ms[i]))
	}
	return apps
}
