package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/domain/events"
)

type assessmentFixture struct {
	assessmentRepo *mockAssessmentRepo
	userAssessRepo *mockUserAssessmentRepo
	projectRepo    *mockProjectRepo
	certRepo       *mockCertificationRepo
	uc             *AssessmentUsecase
}

func newAssessmentFixture() *assessmentFixture {
	f := &assessmentFixture{
		assessmentRepo: &mockAssessmentRepo{},
		userAssessRepo: &mockUserAssessmentRepo{},
		projectRepo:    &mockProjectRepo{},
		certRepo:       &mockCertificationRepo{},
	}
	f.uc = NewAssessmentUsecase(
		f.assessmentRepo,
		f.userAssessRepo,
		f.projectRepo,
		NewCertificationUsecase(f.certRepo),
		&fakeUOW{},
	)
	return f
}

func safetyAssessment(projectID uuid.UUID) *entities.Assessment {
	return &entities.Assessment{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      "Safety Basics",
		Questions: threeQuestions,
		MaxScore:  decimal.RequireFromString("100"),
	}
}

func projectWithMinimum(min string) *entities.Project {
	return &entities.Project{
		ID:           uuid.New(),
		Title:        "Grid Maintenance",
		MinimumScore: decimal.RequireFromString(min),
		Status:       entities.ProjectStatusActive,
	}
}

func TestAssessmentUsecase_Submit_PassingScoreCertifies(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	userID := uuid.New()
	project := projectWithMinimum("70.00")
	assessment := safetyAssessment(project.ID)

	f.assessmentRepo.On("GetByID", ctx, assessment.ID).Return(assessment, nil)
	f.userAssessRepo.On("ExistsByUserAndAssessment", ctx, userID, assessment.ID).Return(false, nil)
	f.projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
	f.userAssessRepo.On("Create", ctx, mock.AnythingOfType("*entities.UserAssessment")).Return(nil)
	f.certRepo.On("Create", ctx, mock.AnythingOfType("*entities.Certification")).Return(nil)

	result, evts, err := f.uc.Submit(ctx, userID, assessment.ID, map[string]string{
		"question_0": "4",
		"question_1": "Paris",
		"question_2": "blue",
	})
	require.NoError(t, err)
	assert.True(t, result.Certified)
	assert.Equal(t, "100", result.Score.String())

	require.Len(t, evts, 2)
	assert.Equal(t, events.KindScored, evts[0].Kind)
	assert.Equal(t, "100", evts[0].Meta["score"])
	assert.Equal(t, events.KindCertified, evts[1].Kind)
	assert.Equal(t, "Safety Basics", evts[1].Meta["skill"])

	created := f.certRepo.Calls[0].Arguments.Get(1).(*entities.Certification)
	assert.Equal(t, assessment.Name, created.SkillName)
	assert.Equal(t, assessment.ID, created.AssessmentID)
	assert.Equal(t, userID, created.UserID)
}

func TestAssessmentUsecase_Submit_ExactThresholdCertifies(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	userID := uuid.New()
	// 2/3 correct scores 66.67, exactly the configured minimum
	project := projectWithMinimum("66.67")
	assessment := safetyAssessment(project.ID)

	f.assessmentRepo.On("GetByID", ctx, assessment.ID).Return(assessment, nil)
	f.userAssessRepo.On("ExistsByUserAndAssessment", ctx, userID, assessment.ID).Return(false, nil)
	f.projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
	f.userAssessRepo.On("Create", ctx, mock.AnythingOfType("*entities.UserAssessment")).Return(nil)
	f.certRepo.On("Create", ctx, mock.AnythingOfType("*entities.Certification")).Return(nil)

	result, evts, err := f.uc.Submit(ctx, userID, assessment.ID, map[string]string{
		"question_0": "4",
		"question_1": "Paris",
	})
	require.NoError(t, err)
	assert.True(t, result.Certified)
	assert.Len(t, evts, 2)
}

func TestAssessmentUsecase_Submit_BelowThresholdRecordsWithoutCertifying(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	userID := uuid.New()
	project := projectWithMinimum("70.00")
	assessment := safetyAssessment(project.ID)

	f.assessmentRepo.On("GetByID", ctx, assessment.ID).Return(assessment, nil)
	f.userAssessRepo.On("ExistsByUserAndAssessment", ctx, userID, assessment.ID).Return(false, nil)
	f.projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
	f.userAssessRepo.On("Create", ctx, mock.AnythingOfType("*entities.UserAssessment")).Return(nil)

	result, evts, err := f.uc.Submit(ctx, userID, assessment.ID, map[string]string{
		"question_0": "4",
	})
	require.NoError(t, err)
	assert.False(t, result.Certified)
	assert.Equal(t, "33.33", result.Score.String())

	require.Len(t, evts, 1)
	assert.Equal(t, events.KindScored, evts[0].Kind)
	f.certRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssessmentUsecase_Submit_DuplicateRejected(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	userID := uuid.New()
	assessment := safetyAssessment(uuid.New())

	f.assessmentRepo.On("GetByID", ctx, assessment.ID).Return(assessment, nil)
	f.userAssessRepo.On("ExistsByUserAndAssessment", ctx, userID, assessment.ID).Return(true, nil)

	_, _, err := f.uc.Submit(ctx, userID, assessment.ID, map[string]string{"question_0": "4"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyCompleted)
	f.userAssessRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssessmentUsecase_Submit_RaceLostAtInsert(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	userID := uuid.New()
	project := projectWithMinimum("70.00")
	assessment := safetyAssessment(project.ID)

	f.assessmentRepo.On("GetByID", ctx, assessment.ID).Return(assessment, nil)
	f.userAssessRepo.On("ExistsByUserAndAssessment", ctx, userID, assessment.ID).Return(false, nil)
	f.projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
	f.userAssessRepo.On("Create", ctx, mock.AnythingOfType("*entities.UserAssessment")).
		Return(domainerrors.ErrAlreadyCompleted)

	_, evts, err := f.uc.Submit(ctx, userID, assessment.ID, map[string]string{"question_0": "4"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyCompleted)
	assert.Empty(t, evts)
	f.certRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssessmentUsecase_Submit_UnparseableDefinitionScoresZero(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	userID := uuid.New()
	project := projectWithMinimum("70.00")
	assessment := safetyAssessment(project.ID)
	assessment.Questions = "{broken json"

	f.assessmentRepo.On("GetByID", ctx, assessment.ID).Return(assessment, nil)
	f.userAssessRepo.On("ExistsByUserAndAssessment", ctx, userID, assessment.ID).Return(false, nil)
	f.projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
	f.userAssessRepo.On("Create", ctx, mock.AnythingOfType("*entities.UserAssessment")).Return(nil)

	result, _, err := f.uc.Submit(ctx, userID, assessment.ID, map[string]string{"question_0": "4"})
	require.NoError(t, err)
	assert.True(t, result.Score.IsZero())
	assert.False(t, result.Certified)
	f.certRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssessmentUsecase_Submit_AssessmentMissing(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	assessmentID := uuid.New()

	f.assessmentRepo.On("GetByID", ctx, assessmentID).Return(nil, domainerrors.ErrNotFound)

	_, _, err := f.uc.Submit(ctx, uuid.New(), assessmentID, nil)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAssessmentUsecase_GetByID_RedactsAnswers(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	userID := uuid.New()
	assessment := safetyAssessment(uuid.New())

	f.assessmentRepo.On("GetByID", ctx, assessment.ID).Return(assessment, nil)
	f.userAssessRepo.On("GetByUserAndAssessment", ctx, userID, assessment.ID).
		Return(nil, domainerrors.ErrNotFound)

	resp, err := f.uc.GetByID(ctx, assessment.ID, userID)
	require.NoError(t, err)
	require.Len(t, resp.Questions, 3)
	assert.Equal(t, "2+2?", resp.Questions[0].Prompt)
	assert.False(t, resp.IsCompleted)
	assert.Nil(t, resp.UserScore)
}

func TestAssessmentUsecase_GetByID_AnnotatesCompletion(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	userID := uuid.New()
	assessment := safetyAssessment(uuid.New())

	record := &entities.UserAssessment{
		ID:           uuid.New(),
		UserID:       userID,
		AssessmentID: assessment.ID,
		Score:        decimal.RequireFromString("85.00"),
		CompletedAt:  time.Now(),
	}
	f.assessmentRepo.On("GetByID", ctx, assessment.ID).Return(assessment, nil)
	f.userAssessRepo.On("GetByUserAndAssessment", ctx, userID, assessment.ID).Return(record, nil)

	resp, err := f.uc.GetByID(ctx, assessment.ID, userID)
	require.NoError(t, err)
	assert.True(t, resp.IsCompleted)
	require.NotNil(t, resp.UserScore)
	assert.True(t, resp.UserScore.Equal(record.Score))
	require.NotNil(t, resp.CompletedAt)
}

func TestAssessmentUsecase_ListByProject(t *testing.T) {
	f := newAssessmentFixture()
	ctx := context.Background()
	projectID := uuid.New()
	first := safetyAssessment(projectID)
	second := safetyAssessment(projectID)
	second.Name = "Wiring Fundamentals"

	f.assessmentRepo.On("ListByProject", ctx, projectID).
		Return([]*entities.Assessment{first, second}, nil)

	resps, err := f.uc.ListByProject(ctx, projectID, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, resps, 2)
	assert.Equal(t, "Wiring Fundamentals", resps[1].Name)
	// uuid.Nil caller skips the completion lookup
	f.userAssessRepo.AssertNotCalled(t, "GetByUserAndAssessment", mock.Anything, mock.Anything, mock.Anything)
}
