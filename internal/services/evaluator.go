package services

import (
	"context"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"mockmate/interview/internal/models"
)

// EvaluatorService scores the full QA sequence of a finalized session. The
// technical score comes from the generative scorer; the other three streams
// are local string heuristics.
type EvaluatorService interface {
	Evaluate(ctx context.Context, sessionID string, pairs []models.QAPair) *models.Evaluation
}

type evaluatorService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewEvaluatorService(gemini GeminiService) EvaluatorService {
	return &evaluatorService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

var confidentPhrases = []string{"definitely", "certainly", "of course", "i did", "i worked"}
var hesitantPhrases = []string{"maybe", "probably", "not sure", "i think"}

var professionalWords = []string{"team", "collaborated", "developed", "thank", "appreciate", "worked"}
var negativeWords = []string{"lazy", "blame", "hate", "stuck"}

// analyzeCommunication maps word and sentence counts onto four fixed bands.
func analyzeCommunication(answer string) float64 {
	words := len(strings.Fields(answer))
	sentences := strings.Count(answer, ".")

	switch {
	case words < 10:
		return 0.5
	case words < 40:
		return 0.8
	case sentences > 5:
		return 0.75
	default:
		return 0.7
	}
}

// analyzeConfidence starts at 0.7, rewards confidence-signaling phrases and
// penalizes hedging ones, clamped to [0.4, 1.0].
func analyzeConfidence(answer string) float64 {
	lower := strings.ToLower(answer)

	score := 0.7
	for _, phrase := range confidentPhrases {
		if strings.Contains(lower, phrase) {
			score += 0.1
		}
	}
	for _, phrase := range hesitantPhrases {
		if strings.Contains(lower, phrase) {
			score -= 0.1
		}
	}

	return clamp(score, 0.4, 1.0)
}

// analyzeProfessionalism starts at 0.75 with smaller rewards and the same
// clamp range.
func analyzeProfessionalism(answer string) float64 {
	lower := strings.ToLower(answer)

	score := 0.75
	for _, word := range professionalWords {
		if strings.Contains(lower, word) {
			score += 0.05
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			score -= 0.1
		}
	}

	return clamp(score, 0.4, 1.0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

var leadingNumberPattern = regexp.MustCompile(`(\d{1,3})`)

const (
	defaultScore         = 65
	errorScore           = 60
	defaultFeedback      = "Good understanding; could add more detail."
	partialFeedback      = "Partial response from Gemini."
	errorFeedback        = "Unable to analyze technically; default score applied."
	maxFallbackFeedback  = 120
	technicalTemperature = 0.3
)

type technicalScore struct {
	Score    *float64 `json:"score"`
	Feedback string   `json:"feedback"`
}

// scoreTechnical asks the generative scorer for a score/feedback pair. The
// strict JSON decode is followed by the documented lenient fallback: scan
// the raw text for a 1-3 digit number, default to 65, and truncate the text
// for feedback.
func (e *evaluatorService) scoreTechnical(ctx context.Context, question, answer string) (float64, string) {
	prompt := e.promptBuilder.BuildTechnicalScorePrompt(question, answer)

	response, err := e.gemini.GenerateText(ctx, prompt, technicalTemperature)
	if err != nil {
		log.Printf("⚠️ Technical scoring failed: %v\n", err)
		return errorScore, errorFeedback
	}

	var parsed technicalScore
	if err := decodeModelJSON(response, &parsed); err == nil {
		score := float64(defaultScore)
		if parsed.Score != nil {
			score = *parsed.Score
		}
		feedback := parsed.Feedback
		if feedback == "" {
			feedback = defaultFeedback
		}
		return score, feedback
	}

	log.Printf("⚠️ Strict JSON parse failed, falling back to numeric scan\n")

	score := float64(defaultScore)
	if match := leadingNumberPattern.FindString(response); match != "" {
		if v, err := strconv.ParseFloat(match, 64); err == nil {
			score = v
		}
	}

	feedback := truncate(response, maxFallbackFeedback)
	if feedback == "" {
		feedback = partialFeedback
	}

	return score, feedback
}

// Evaluate implements EvaluatorService. A session with zero answered turns
// yields the all-zero incomplete evaluation rather than failing.
func (e *evaluatorService) Evaluate(ctx context.Context, sessionID string, pairs []models.QAPair) *models.Evaluation {
	eval := &models.Evaluation{
		ID:          uuid.New(),
		SessionID:   sessionID,
		PerQuestion: models.QuestionFeedbackList{},
	}

	if len(pairs) == 0 {
		log.Printf("⚠️ No QA pairs for session %s, returning incomplete evaluation\n", sessionID)
		eval.Incomplete = true
		return eval
	}

	var techScores, commScores, confScores, profScores []float64

	for _, pair := range pairs {
		techScore, feedback := e.scoreTechnical(ctx, pair.Question, pair.Answer)

		eval.PerQuestion = append(eval.PerQuestion, models.QuestionFeedback{
			Question:       pair.Question,
			TechnicalScore: techScore,
			Feedback:       feedback,
		})

		techScores = append(techScores, techScore/100)
		commScores = append(commScores, analyzeCommunication(pair.Answer))
		confScores = append(confScores, analyzeConfidence(pair.Answer))
		profScores = append(profScores, analyzeProfessionalism(pair.Answer))
	}

	eval.Technical = roundScore(mean(techScores) * 100)
	eval.Communication = roundScore(mean(commScores) * 100)
	eval.Confidence = roundScore(mean(confScores) * 100)
	eval.Professionalism = roundScore(mean(profScores) * 100)

	log.Printf("✅ Evaluation complete for session: %s\n", sessionID)
	return eval
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
