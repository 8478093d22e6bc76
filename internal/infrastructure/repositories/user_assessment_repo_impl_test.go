package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
)

func newSubmission(userID, assessmentID uuid.UUID, score string) *entities.UserAssessment {
	return &entities.UserAssessment{
		ID:           uuid.New(),
		UserID:       userID,
		AssessmentID: assessmentID,
		Score:        decimal.RequireFromString(score),
		Answers:      `{"question_0":"a"}`,
		CompletedAt:  time.Now(),
	}
}

func TestUserAssessmentRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createApplicationTables(t, db)
	repo := NewUserAssessmentRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	assessmentID := uuid.New()
	ua := newSubmission(userID, assessmentID, "75.00")
	require.NoError(t, repo.Create(ctx, ua))

	got, err := repo.GetByUserAndAssessment(ctx, userID, assessmentID)
	require.NoError(t, err)
	require.Equal(t, ua.ID, got.ID)
	require.True(t, got.Score.Equal(decimal.RequireFromString("75.00")))
	require.Equal(t, ua.Answers, got.Answers)

	exists, err := repo.ExistsByUserAndAssessment(ctx, userID, assessmentID)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsByUserAndAssessment(ctx, uuid.New(), assessmentID)
	require.NoError(t, err)
	require.False(t, exists)

	_, err = repo.GetByUserAndAssessment(ctx, uuid.New(), assessmentID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserAssessmentRepository_ResubmissionRejected(t *testing.T) {
	db := newTestDB(t)
	createApplicationTables(t, db)
	repo := NewUserAssessmentRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	assessmentID := uuid.New()
	require.NoError(t, repo.Create(ctx, newSubmission(userID, assessmentID, "60.00")))

	// A higher score does not overwrite the first record
	err := repo.Create(ctx, newSubmission(userID, assessmentID, "95.00"))
	require.ErrorIs(t, err, domainerrors.ErrAlreadyCompleted)

	got, err := repo.GetByUserAndAssessment(ctx, userID, assessmentID)
	require.NoError(t, err)
	require.True(t, got.Score.Equal(decimal.RequireFromString("60.00")))
}

func TestUserAssessmentRepository_RepeatedSubmitOneWins(t *testing.T) {
	db := newTestDB(t)
	createApplicationTables(t, db)
	repo := NewUserAssessmentRepository(db)

	userID := uuid.New()
	assessmentID := uuid.New()

	successes := 0
	for i := 0; i < 8; i++ {
		err := repo.Create(context.Background(), newSubmission(userID, assessmentID, "80.00"))
		if err == nil {
			successes++
		} else {
			require.ErrorIs(t, err, domainerrors.ErrAlreadyCompleted)
		}
	}
	require.Equal(t, 1, successes)
}

func TestUserAssessmentRepository_ListByUser(t *testing.T) {
	db := newTestDB(t)
	createApplicationTables(t, db)
	repo := NewUserAssessmentRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, newSubmission(userID, uuid.New(), "50.00")))
	require.NoError(t, repo.Create(ctx, newSubmission(userID, uuid.New(), "90.00")))
	require.NoError(t, repo.Create(ctx, newSubmission(uuid.New(), uuid.New(), "70.00")))

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 2)
}
