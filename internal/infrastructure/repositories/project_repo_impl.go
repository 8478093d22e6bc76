package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/infrastructure/models"
	"growcore.backend/pkg/logger"
)

// ProjectRepository implements project catalog reads
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// GetByID gets a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return projectToEntity(ctx, &m), nil
}

// ListByStatus lists projects in a status with optional category filter and
// pagination, newest first
func (r *ProjectRepository) ListByStatus(ctx context.Context, status entities.ProjectStatus, category string, limit, offset int) ([]*entities.Project, int64, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.Project{}).Where("status = ?", string(status))
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Project
	if err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		projects = append(projects, projectToEntity(ctx, &ms[i]))
	}
	return projects, total, nil
}

func projectToEntity(ctx context.Context, m *models.Project) *entities.Project {
	p := &entities.Project{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Category:        m.Category,
		TermsConditions: m.TermsConditions,
		ScopeOfWork:     m.ScopeOfWork,
		RequiredSkills:  []string{},
		MinimumScore:    m.MinimumScore,
		Status:          entities.ProjectStatus(m.Status),
		ClientCRMURL:    m.ClientCRMURL,
		CreatedAt:       m.CreatedAt,
	}
	if m.RequiredSkills != "" {
		var skills []string
		if err := json.Unmarshal([]byte(m.RequiredSkills), &skills); err != nil {
			logger.Error(ctx, "failed to decode project required skills",
				zap.String("project_id", m.ID.String()),
				zap.Error(err))
		} else {
			p.RequiredSkills = skills
		}
	}
	return p
}

// AssessmentRepository implements assessment catalog reads
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// GetByID gets an assessment definition by ID
func (r *AssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Assessment, error) {
	var m models.Assessment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return assessmentToEntity(&m), nil
}

// ListByProject lists assessment definitions attached to a project
func (r *AssessmentRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.Assessment, error) {
	var ms []models.Assessment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	assessments := make([]*entities.Assessment, 0, len(ms))
	for i := range ms {
		assessments = append(assessments, assessmentToEntity(&ms[i]))
	}
	return assessments, nil
}

func assessmentToEntity(m *models.Assessment) *entities.Assessment {
	return &entities.Assessment{
		ID:               m.ID,
		ProjectID:        m.ProjectID,
		Name:             m.Name,
		Description:      m.Description,
		Questions:        m.Questions,
		MaxScore:         m.MaxScore,
		TimeLimitMinutes: m.TimeLimitMinutes,
	}
}
