package repositories

import (
	"context"

	"github.com/google/uuid"
	"growcore.backend/internal/domain/entities"
)

// ApplicationRepository defines project application data operations.
// Create must fail with domain ErrAlreadyApplied when a record for the same
// (user, project) pair exists; the storage layer enforces this with a unique
// constraint so concurrent applies resolve to exactly one success.
type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.ProjectApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ProjectApplication, error)
	GetByUserAndProject(ctx context.Context, userID, projectID uuid.UUID) (*entities.ProjectApplication, error)
	ExistsByUserAndProject(ctx context.Context, userID, projectID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ProjectApplication, error)
	ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status entities.ApplicationStatus) ([]*entities.ProjectApplication, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.ProjectApplication, error)
	// UpdateStatus moves a record from one status to another. It must update
	// only when the stored status still equals from, so concurrent
	// transitions cannot skip or rewind the state machine.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.ApplicationStatus) error
}

// UserAssessmentRepository defines submission record operations. Records are
// immutable after Create; Create must fail with ErrAlreadyCompleted when a
// record for the same (user, assessment) pair exists, enforced by a unique
// constraint.
type UserAssessmentRepository interface {
	Create(ctx context.Context, ua *entities.UserAssessment) error
	GetByUserAndAssessment(ctx context.Context, userID, assessmentID uuid.UUID) (*entities.UserAssessment, error)
	ExistsByUserAndAssessment(ctx context.Context, userID, assessmentID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserAssessment, error)
}
