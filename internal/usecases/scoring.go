package usecases

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
)

// answerKey builds the wire key for the answer to question index i
func answerKey(i int) string {
	return fmt.Sprintf("question_%d", i)
}

// parseQuestions decodes a stored question definition. The raw JSON is the
// persisted form; any decode failure is reported as ErrMalformedDefinition.
func parseQuestions(raw string) ([]entities.AssessmentQuestion, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var questions []entities.AssessmentQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrMalformedDefinition, err)
	}
	return questions, nil
}

// ScoreAssessment compares answers against the stored definition and returns
// 100 * correct / total, rounded half-up to two decimal places. Answers are
// matched by exact string equality, case-sensitive, no normalization. An
// empty definition scores 0.00. A definition that cannot be parsed returns
// ErrMalformedDefinition; the submission workflow degrades that to a zero
// score instead of failing the pipeline.
func ScoreAssessment(rawQuestions string, answers map[string]string) (decimal.Decimal, error) {
	questions, err := parseQuestions(rawQuestions)
	if err != nil {
		return decimal.Zero, err
	}
	if len(questions) == 0 {
		return decimal.Zero, nil
	}

	correct := 0
	for i, q := range questions {
		if q.CorrectAnswer == "" {
			continue
		}
		if answer, ok := answers[answerKey(i)]; ok && answer == q.CorrectAnswer {
			correct++
		}
	}

	return decimal.NewFromInt(int64(correct) * 100).
		Div(decimal.NewFromInt(int64(len(questions)))).
		Round(2), nil
}

// RedactQuestions returns the caller-facing view of a stored definition with
// correct answers stripped. A malformed definition yields no questions, never
// an error: the view degrades the same way scoring does.
func RedactQuestions(rawQuestions string) []entities.QuestionView {
	questions, err := parseQuestions(rawQuestions)
	if err != nil {
		return nil
	}
	views := make([]entities.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, entities.QuestionView{
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	return views
}
