package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
)

func TestWorkSessionUsecase_Start_RequiresAcceptedApplication(t *testing.T) {
	sessionRepo := &mockWorkSessionRepo{}
	appRepo := &mockApplicationRepo{}
	uc := NewWorkSessionUsecase(sessionRepo, appRepo)
	ctx := context.Background()

	userID := uuid.New()
	projectID := uuid.New()

	appRepo.On("GetByUserAndProject", ctx, userID, projectID).Return(&entities.ProjectApplication{
		UserID:    userID,
		ProjectID: projectID,
		Status:    entities.ApplicationStatusApplied,
	}, nil)

	_, err := uc.Start(ctx, userID, &entities.StartWorkSessionInput{ProjectID: projectID})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkSessionUsecase_Start_NoApplication(t *testing.T) {
	sessionRepo := &mockWorkSessionRepo{}
	appRepo := &mockApplicationRepo{}
	uc := NewWorkSessionUsecase(sessionRepo, appRepo)
	ctx := context.Background()

	userID := uuid.New()
	projectID := uuid.New()
	appRepo.On("GetByUserAndProject", ctx, userID, projectID).Return(nil, domainerrors.ErrNotFound)

	_, err := uc.Start(ctx, userID, &entities.StartWorkSessionInput{ProjectID: projectID})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestWorkSessionUsecase_Start_Succeeds(t *testing.T) {
	sessionRepo := &mockWorkSessionRepo{}
	appRepo := &mockApplicationRepo{}
	uc := NewWorkSessionUsecase(sessionRepo, appRepo)
	ctx := context.Background()

	userID := uuid.New()
	projectID := uuid.New()

	appRepo.On("GetByUserAndProject", ctx, userID, projectID).Return(&entities.ProjectApplication{
		UserID:    userID,
		ProjectID: projectID,
		Status:    entities.ApplicationStatusAccepted,
	}, nil)
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*entities.WorkSession")).Return(nil)

	session, err := uc.Start(ctx, userID, &entities.StartWorkSessionInput{
		ProjectID:   projectID,
		Description: "panel installation",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, "panel installation", session.Description)
	assert.Nil(t, session.EndTime)
	assert.Nil(t, session.HoursWorked)
}

func TestWorkSessionUsecase_End_Succeeds(t *testing.T) {
	sessionRepo := &mockWorkSessionRepo{}
	uc := NewWorkSessionUsecase(sessionRepo, &mockApplicationRepo{})
	ctx := context.Background()

	userID := uuid.New()
	session := &entities.WorkSession{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: uuid.New(),
		StartTime: time.Now().Add(-90 * time.Minute),
	}

	sessionRepo.On("GetByID", ctx, session.ID).Return(session, nil)
	sessionRepo.On("Update", ctx, session).Return(nil)

	ended, err := uc.End(ctx, session.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, ended.EndTime)
	require.NotNil(t, ended.HoursWorked)
	assert.Equal(t, "1.5", ended.HoursWorked.String())
}

func TestWorkSessionUsecase_End_OtherUsersSessionReadsAsNotFound(t *testing.T) {
	sessionRepo := &mockWorkSessionRepo{}
	uc := NewWorkSessionUsecase(sessionRepo, &mockApplicationRepo{})
	ctx := context.Background()

	session := &entities.WorkSession{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		StartTime: time.Now().Add(-time.Hour),
	}
	sessionRepo.On("GetByID", ctx, session.ID).Return(session, nil)

	_, err := uc.End(ctx, session.ID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	sessionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestWorkSessionUsecase_End_AlreadyEnded(t *testing.T) {
	sessionRepo := &mockWorkSessionRepo{}
	uc := NewWorkSessionUsecase(sessionRepo, &mockApplicationRepo{})
	ctx := context.Background()

	userID := uuid.New()
	ended := time.Now().Add(-time.Hour)
	session := &entities.WorkSession{
		ID:        uuid.New(),
		UserID:    userID,
		StartTime: ended.Add(-time.Hour),
		EndTime:   &ended,
	}
	sessionRepo.On("GetByID", ctx, session.ID).Return(session, nil)

	_, err := uc.End(ctx, session.ID, userID)
	require.Error(t, err)
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
}
