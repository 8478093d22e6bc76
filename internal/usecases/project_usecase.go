package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/domain/events"
	"growcore.backend/internal/domain/repositories"
	"growcore.backend/pkg/logger"
)

// ProjectUsecase drives the application workflow: project discovery,
// the apply state machine and the per-user read paths.
type ProjectUsecase struct {
	projectRepo repositories.ProjectRepository
	appRepo     repositories.ApplicationRepository
	profileRepo repositories.UserProfileRepository
	assessments *AssessmentUsecase
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(
	projectRepo repositories.ProjectRepository,
	appRepo repositories.ApplicationRepository,
	profileRepo repositories.UserProfileRepository,
	assessments *AssessmentUsecase,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo: projectRepo,
		appRepo:     appRepo,
		profileRepo: profileRepo,
		assessments: assessments,
	}
}

// Apply creates an application in state APPLIED for the given user and
// project. Preconditions: project exists and is ACTIVE, the user's profile is
// complete, and no application for this (user, project) pair exists. The
// duplicate check is backed by a unique constraint, so a concurrent apply for
// the same pair yields exactly one success and one ErrAlreadyApplied.
func (u *ProjectUsecase) Apply(ctx context.Context, userID, projectID uuid.UUID) (*entities.ProjectApplication, []events.Event, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	if project.Status != entities.ProjectStatusActive {
		return nil, nil, domainerrors.ErrProjectNotActive
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, nil, err
	}
	if !profile.IsComplete() {
		return nil, nil, domainerrors.ErrProfileIncomplete
	}

	// Friendly pre-check; the insert below still races safely on the
	// unique index.
	exists, err := u.appRepo.ExistsByUserAndProject(ctx, userID, projectID)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, domainerrors.ErrAlreadyApplied
	}

	app := &entities.ProjectApplication{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: projectID,
		Status:    entities.ApplicationStatusApplied,
		AppliedAt: time.Now(),
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, nil, err
	}

	logger.Info(ctx, "user applied to project",
		zap.String("user_id", userID.String()),
		zap.String("project_id", projectID.String()))

	evt := events.New(events.KindApplied, userID,
		"Application Submitted",
		fmt.Sprintf("Your application to %q has been received.", project.Title))
	evt.Meta = map[string]string{"projectId": projectID.String()}

	return app, []events.Event{evt}, nil
}

// CanApply reports whether the user could currently apply to the project.
// Mirrors the Apply preconditions without creating anything; any lookup
// failure reads as "cannot apply".
func (u *ProjectUsecase) CanApply(ctx context.Context, userID, projectID uuid.UUID) bool {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil || project.Status != entities.ProjectStatusActive {
		return false
	}
	exists, err := u.appRepo.ExistsByUserAndProject(ctx, userID, projectID)
	if err != nil {
		return false
	}
	return !exists
}

// ListActiveProjects returns ACTIVE projects, optionally filtered by
// category, annotated with the caller's application state when userID is set.
func (u *ProjectUsecase) ListActiveProjects(ctx context.Context, category string, userID uuid.UUID, limit, offset int) ([]*entities.ProjectResponse, int64, error) {
	projects, total, err := u.projectRepo.ListByStatus(ctx, entities.ProjectStatusActive, category, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*entities.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp, err := u.toProjectResponse(ctx, p, userID)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, resp)
	}
	return responses, total, nil
}

// GetProject returns a single active project with caller-specific state
func (u *ProjectUsecase) GetProject(ctx context.Context, id, userID uuid.UUID) (*entities.ProjectResponse, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.Status != entities.ProjectStatusActive {
		return nil, domainerrors.ErrProjectNotActive
	}
	return u.toProjectResponse(ctx, project, userID)
}

// GetUserApplications returns the projects the user applied to, annotated
// with application state. Reflects committed state only.
func (u *ProjectUsecase) GetUserApplications(ctx context.Context, userID uuid.UUID) ([]*entities.ProjectResponse, error) {
	return u.applicationsToResponses(ctx, userID, func() ([]*entities.ProjectApplication, error) {
		return u.appRepo.ListByUser(ctx, userID)
	})
}

// GetUserApplicationsByStatus filters the user's applications by status
func (u *ProjectUsecase) GetUserApplicationsByStatus(ctx context.Context, userID uuid.UUID, status entities.ApplicationStatus) ([]*entities.ProjectResponse, error) {
	if !status.Valid() {
		return nil, domainerrors.BadRequest("unknown application status")
	}
	return u.applicationsToResponses(ctx, userID, func() ([]*entities.ProjectApplication, error) {
		return u.appRepo.ListByUserAndStatus(ctx, userID, status)
	})
}

// UpdateApplicationStatus advances an application through the state machine.
// Transitions only move forward; anything else fails with
// ErrInvalidTransition. Submitting an assessment never calls this: acceptance
// is a separate decision from scoring.
func (u *ProjectUsecase) UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, next entities.ApplicationStatus) error {
	if !next.Valid() {
		return domainerrors.BadRequest("unknown application status")
	}
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if !app.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidTransition
	}
	return u.appRepo.UpdateStatus(ctx, applicationID, app.Status, next)
}

// GetProjectStats aggregates application counts for a project
func (u *ProjectUsecase) GetProjectStats(ctx context.Context, projectID uuid.UUID) (*entities.ProjectStats, error) {
	if _, err := u.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	apps, err := u.appRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	stats := &entities.ProjectStats{TotalApplications: int64(len(apps))}
	for _, app := range apps {
		switch app.Status {
		case entities.ApplicationStatusAccepted:
			stats.AcceptedApplications++
		case entities.ApplicationStatusCompleted:
			stats.CompletedApplications++
		}
	}
	return stats, nil
}

func (u *ProjectUsecase) applicationsToResponses(ctx context.Context, userID uuid.UUID, list func() ([]*entities.ProjectApplication, error)) ([]*entities.ProjectResponse, error) {
	apps, err := list()
	if err != nil {
		return nil, err
	}

	responses := make([]*entities.ProjectResponse, 0, len(apps))
	for _, app := range apps {
		project, err := u.projectRepo.GetByID(ctx, app.ProjectID)
		if err != nil {
			return nil, err
		}
		resp, err := u.toProjectResponse(ctx, project, userID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (u *ProjectUsecase) toProjectResponse(ctx context.Context, project *entities.Project, userID uuid.UUID) (*entities.ProjectResponse, error) {
	resp := &entities.ProjectResponse{Project: *project}

	if userID != uuid.Nil {
		app, err := u.appRepo.GetByUserAndProject(ctx, userID, project.ID)
		switch {
		case err == nil:
			resp.HasApplied = true
			resp.ApplicationStatus = app.Status
			appliedAt := app.AppliedAt
			resp.AppliedAt = &appliedAt
			resp.AssessmentScore = app.AssessmentScore
		case !errors.Is(err, domainerrors.ErrNotFound):
			return nil, err
		}
	}

	assessments, err := u.assessments.ListByProject(ctx, project.ID, userID)
	if err != nil {
		return nil, err
	}
	resp.Assessments = assessments

	return resp, nil
}
