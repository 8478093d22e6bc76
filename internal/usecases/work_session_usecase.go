package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/domain/repositories"
)

// WorkSessionUsecase logs work sessions against accepted projects
type WorkSessionUsecase struct {
	sessionRepo repositories.WorkSessionRepository
	appRepo     repositories.ApplicationRepository
}

// NewWorkSessionUsecase creates a new work session usecase
func NewWorkSessionUsecase(
	sessionRepo repositories.WorkSessionRepository,
	appRepo repositories.ApplicationRepository,
) *WorkSessionUsecase {
	return &WorkSessionUsecase{sessionRepo: sessionRepo, appRepo: appRepo}
}

// Start opens a work session. The user must hold an ACCEPTED application for
// the project.
func (u *WorkSessionUsecase) Start(ctx context.Context, userID uuid.UUID, input *entities.StartWorkSessionInput) (*entities.WorkSession, error) {
	app, err := u.appRepo.GetByUserAndProject(ctx, userID, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if app.Status != entities.ApplicationStatusAccepted {
		return nil, domainerrors.PreconditionFailed("application is not accepted for this project", domainerrors.ErrForbidden)
	}

	session := &entities.WorkSession{
		ID:          uuid.New(),
		UserID:      userID,
		ProjectID:   input.ProjectID,
		StartTime:   time.Now(),
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// End closes a running session and records hours worked to two decimal
// places
func (u *WorkSessionUsecase) End(ctx context.Context, sessionID, userID uuid.UUID) (*entities.WorkSession, error) {
	session, err := u.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	if session.EndTime != nil {
		return nil, domainerrors.Conflict("work session already ended", domainerrors.ErrValidation)
	}

	now := time.Now()
	hours := decimal.NewFromFloat(now.Sub(session.StartTime).Hours()).Round(2)
	session.EndTime = &now
	session.HoursWorked = &hours

	if err := u.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// TotalHoursLast30Days sums hours worked by the user in the past 30 days
func (u *WorkSessionUsecase) TotalHoursLast30Days(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	now := time.Now()
	return u.sessionRepo.TotalHoursBetween(ctx, userID, now.AddDate(0, 0, -30), now)
}
