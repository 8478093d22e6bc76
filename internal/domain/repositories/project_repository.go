package repositories

import (
	"context"

	"github.com/google/uuid"
	"growcore.backend/internal/domain/entities"
)

// ProjectRepository is the catalog read side for projects. The workflow
// queries projects but never mutates them except for status.
type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	ListByStatus(ctx context.Context, status entities.ProjectStatus, category string, limit, offset int) ([]*entities.Project, int64, error)
}

// AssessmentRepository is the catalog read side for assessment definitions
type AssessmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Assessment, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.Assessment, error)
}
