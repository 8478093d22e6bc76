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

func TestProjectRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	id := uuid.New()
	mustExec(t, db, `INSERT INTO projects(id,title,category,required_skills,minimum_score,status,created_at,updated_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		id.String(), "Solar Install", "energy", `["wiring","safety"]`, "70", "ACTIVE", time.Now(), time.Now())

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Solar Install", got.Title)
	require.Equal(t, entities.ProjectStatusActive, got.Status)
	require.Equal(t, []string{"wiring", "safety"}, got.RequiredSkills)
	require.True(t, got.MinimumScore.Equal(decimal.RequireFromString("70")))

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProjectRepository_BadSkillsJSON(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewProjectRepository(db)

	id := uuid.New()
	mustExec(t, db, `INSERT INTO projects(id,title,required_skills,minimum_score,status,created_at,updated_at)
		VALUES (?,?,?,?,?,?,?)`,
		id.String(), "Broken", "not-json", "70", "ACTIVE", time.Now(), time.Now())

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Empty(t, got.RequiredSkills)
}

func TestProjectRepository_ListByStatus(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	now := time.Now()
	for i, p := range []struct {
		title    string
		category string
		status   string
	}{
		{"Active A", "energy", "ACTIVE"},
		{"Active B", "plumbing", "ACTIVE"},
		{"Closed", "energy", "CLOSED"},
	} {
		mustExec(t, db, `INSERT INTO projects(id,title,category,required_skills,minimum_score,status,created_at,updated_at)
			VALUES (?,?,?,?,?,?,?,?)`,
			uuid.New().String(), p.title, p.category, `[]`, "70", p.status,
			now.Add(time.Duration(i)*time.Second), now)
	}

	active, total, err := repo.ListByStatus(ctx, entities.ProjectStatusActive, "", 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, active, 2)

	energy, total, err := repo.ListByStatus(ctx, entities.ProjectStatusActive, "energy", 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, energy, 1)
	require.Equal(t, "Active A", energy[0].Title)

	paged, total, err := repo.ListByStatus(ctx, entities.ProjectStatusActive, "", 1, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, paged, 1)
}

func TestAssessmentRepository_GetAndList(t *testing.T) {
	db := newTestDB(t)
	createProjectTables(t, db)
	repo := NewAssessmentRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	assessmentID := uuid.New()
	questions := `[{"prompt":"2+2?","options":["3","4"],"correctAnswer":"4"}]`
	mustExec(t, db, `INSERT INTO assessments(id,project_id,name,questions,max_score,time_limit_minutes,created_at,updated_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		assessmentID.String(), projectID.String(), "Safety Basics", questions, "100", 30, time.Now(), time.Now())
	mustExec(t, db, `INSERT INTO assessments(id,project_id,name,questions,max_score,time_limit_minutes,created_at,updated_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		uuid.New().String(), projectID.String(), "Wiring", `[]`, "100", 30, time.Now().Add(time.Second), time.Now())

	got, err := repo.GetByID(ctx, assessmentID)
	require.NoError(t, err)
	require.Equal(t, "Safety Basics", got.Name)
	require.Equal(t, questions, got.Questions)

	list, err := repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Safety Basics", list[0].Name)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
