package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mockmate/interview/internal/models"
)

// QuestionService asks the generative model for interview questions. An
// empty question means the engine declined and the interview is complete.
type QuestionService interface {
	FirstQuestion(ctx context.Context, profile *models.CandidateProfile, difficulty string) (string, error)
	NextQuestion(ctx context.Context, profile *models.CandidateProfile, previousAnswer, difficulty string) (string, error)
}

type questionService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewQuestionService(gemini GeminiService) QuestionService {
	return &questionService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// FirstQuestion implements QuestionService. The warm-up question ignores the
// resume on purpose.
func (q *questionService) FirstQuestion(ctx context.Context, profile *models.CandidateProfile, difficulty string) (string, error) {
	prompt := q.promptBuilder.BuildFirstQuestionPrompt(difficulty)

	question, err := q.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return "", fmt.Errorf("failed to generate first question: %w", err)
	}

	return strings.TrimSpace(question), nil
}

// NextQuestion implements QuestionService.
func (q *questionService) NextQuestion(ctx context.Context, profile *models.CandidateProfile, previousAnswer, difficulty string) (string, error) {
	summary, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal candidate profile: %w", err)
	}

	prompt := q.promptBuilder.BuildNextQuestionPrompt(string(summary), previousAnswer, difficulty)

	question, err := q.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return "", fmt.Errorf("failed to generate next question: %w", err)
	}

	return strings.TrimSpace(question), nil
}
