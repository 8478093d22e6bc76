package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/domain/events"
	"growcore.backend/internal/domain/repositories"
	"growcore.backend/pkg/logger"
)

// AssessmentUsecase handles assessment reads and the submission pipeline:
// score, persist the immutable submission record, and issue a certification
// when the score clears the project threshold.
type AssessmentUsecase struct {
	assessmentRepo repositories.AssessmentRepository
	userAssessRepo repositories.UserAssessmentRepository
	projectRepo    repositories.ProjectRepository
	certifications *CertificationUsecase
	uow            repositories.UnitOfWork
}

// NewAssessmentUsecase creates a new assessment usecase
func NewAssessmentUsecase(
	assessmentRepo repositories.AssessmentRepository,
	userAssessRepo repositories.UserAssessmentRepository,
	projectRepo repositories.ProjectRepository,
	certifications *CertificationUsecase,
	uow repositories.UnitOfWork,
) *AssessmentUsecase {
	return &AssessmentUsecase{
		assessmentRepo: assessmentRepo,
		userAssessRepo: userAssessRepo,
		projectRepo:    projectRepo,
		certifications: certifications,
		uow:            uow,
	}
}

// Submit scores the answers, records the submission and, when the score
// meets the project's minimum, issues a certification in the same
// transaction. A second submission for the same (user, assessment) pair
// fails with ErrAlreadyCompleted; under concurrent submission the unique
// constraint guarantees exactly one stored record. Submitting never touches
// the application status: acceptance is decided elsewhere.
func (u *AssessmentUsecase) Submit(ctx context.Context, userID, assessmentID uuid.UUID, answers map[string]string) (*entities.SubmitAssessmentResult, []events.Event, error) {
	assessment, err := u.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, nil, err
	}

	exists, err := u.userAssessRepo.ExistsByUserAndAssessment(ctx, userID, assessmentID)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, domainerrors.ErrAlreadyCompleted
	}

	score, err := ScoreAssessment(assessment.Questions, answers)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrMalformedDefinition) {
			return nil, nil, err
		}
		// Fail-safe: a definition we cannot parse scores zero rather than
		// aborting the submission.
		logger.Error(ctx, "assessment definition unparseable, scoring zero",
			zap.String("assessment_id", assessmentID.String()),
			zap.Error(err))
		score = decimal.Zero
	}

	project, err := u.projectRepo.GetByID(ctx, assessment.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, nil, domainerrors.BadRequest("malformed answer payload")
	}

	record := &entities.UserAssessment{
		ID:           uuid.New(),
		UserID:       userID,
		AssessmentID: assessmentID,
		Score:        score,
		Answers:      string(rawAnswers),
		CompletedAt:  time.Now(),
	}

	certified := score.GreaterThanOrEqual(project.MinimumScore)
	var cert *entities.Certification

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userAssessRepo.Create(txCtx, record); err != nil {
			return err
		}
		if certified {
			c, err := u.certifications.Issue(txCtx, userID, assessment, score)
			if err != nil {
				return err
			}
			cert = c
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info(ctx, "assessment submitted",
		zap.String("user_id", userID.String()),
		zap.String("assessment_id", assessmentID.String()),
		zap.String("score", score.String()),
		zap.Bool("certified", certified))

	evts := []events.Event{buildScoredEvent(userID, assessment, score)}
	if cert != nil {
		evts = append(evts, buildCertifiedEvent(userID, cert))
	}

	return &entities.SubmitAssessmentResult{
		AssessmentID: assessmentID,
		Score:        score,
		Certified:    certified,
		CompletedAt:  record.CompletedAt,
	}, evts, nil
}

// GetByID returns an assessment view for the requesting user with the
// correct answers redacted
func (u *AssessmentUsecase) GetByID(ctx context.Context, id, userID uuid.UUID) (*entities.AssessmentResponse, error) {
	assessment, err := u.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.toResponse(ctx, assessment, userID)
}

// ListByProject returns the redacted assessment views for a project
func (u *AssessmentUsecase) ListByProject(ctx context.Context, projectID, userID uuid.UUID) ([]*entities.AssessmentResponse, error) {
	assessments, err := u.assessmentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]*entities.AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		resp, err := u.toResponse(ctx, a, userID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (u *AssessmentUsecase) toResponse(ctx context.Context, a *entities.Assessment, userID uuid.UUID) (*entities.AssessmentResponse, error) {
	resp := &entities.AssessmentResponse{
		ID:               a.ID,
		ProjectID:        a.ProjectID,
		Name:             a.Name,
		Description:      a.Description,
		Questions:        RedactQuestions(a.Questions),
		MaxScore:         a.MaxScore,
		TimeLimitMinutes: a.TimeLimitMinutes,
	}

	if userID == uuid.Nil {
		return resp, nil
	}

	record, err := u.userAssessRepo.GetByUserAndAssessment(ctx, userID, a.ID)
	switch {
	case err == nil:
		resp.IsCompleted = true
		score := record.Score
		resp.UserScore = &score
		completedAt := record.CompletedAt
		resp.CompletedAt = &completedAt
	case !errors.Is(err, domainerrors.ErrNotFound):
		return nil, err
	}
	return resp, nil
}

func buildScoredEvent(userID uuid.UUID, a *entities.Assessment, score decimal.Decimal) events.Event {
	evt := events.New(events.KindScored, userID,
		"Assessment Scored",
		fmt.Sprintf("You scored %s on %q.", score.String(), a.Name))
	evt.Meta = map[string]string{
		"assessmentId": a.ID.String(),
		"score":        score.String(),
	}
	return evt
}

func buildCertifiedEvent(userID uuid.UUID, cert *entities.Certification) events.Event {
	evt := events.New(events.KindCertified, userID,
		"Certification Earned",
		fmt.Sprintf("Congratulations! You earned a certification in %s.", cert.SkillName))
	evt.Meta = map[string]string{
		"certificationId": cert.ID.String(),
		"skill":           cert.SkillName,
	}
	return evt
}
