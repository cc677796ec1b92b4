package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"mockmate/interview/internal/models"
)

// ReportService turns an evaluation into the narrative report: per-category
// feedback plus short-term/long-term recommendations.
type ReportService interface {
	Compile(ctx context.Context, eval *models.Evaluation, role string) *models.Report
}

type reportService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewReportService(gemini GeminiService) ReportService {
	return &reportService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

const (
	communicationLine   = "Continue improving structure and clarity in responses."
	confidenceLine      = "Maintain eye contact and steady tone during answers."
	professionalismLine = "Good etiquette. Stay consistent across all interviews."
	noResponsesLine     = "Unable to evaluate - no responses recorded."
	incompletePrefix    = "Interview incomplete. "
)

// Compile implements ReportService.
func (r *reportService) Compile(ctx context.Context, eval *models.Evaluation, role string) *models.Report {
	report := &models.Report{
		ID:        uuid.New(),
		SessionID: eval.SessionID,
	}

	report.TechnicalFeedback = r.technicalFeedback(ctx, eval, role)

	if len(eval.PerQuestion) == 0 {
		report.TechnicalFeedback = incompletePrefix + report.TechnicalFeedback
		report.CommunicationFeedback = noResponsesLine
		report.ConfidenceFeedback = noResponsesLine
		report.ProfessionalismFeedback = noResponsesLine
	} else {
		report.CommunicationFeedback = communicationLine
		report.ConfidenceFeedback = confidenceLine
		report.ProfessionalismFeedback = professionalismLine
	}

	recommendations := r.recommendations(ctx, eval, role)
	report.ShortTerm = recommendations.ShortTerm
	report.LongTerm = recommendations.LongTerm

	return report
}

// technicalFeedback asks the model for a role-specific paragraph and falls
// back to the fixed score bands when the call fails.
func (r *reportService) technicalFeedback(ctx context.Context, eval *models.Evaluation, role string) string {
	perQuestionJSON, _ := json.MarshalIndent(eval.PerQuestion, "", "  ")
	prompt := r.promptBuilder.BuildTechnicalFeedbackPrompt(eval.Technical, string(perQuestionJSON), role)

	return attemptOr("Technical feedback generation", basicTechnicalFeedback(eval.Technical), func() (string, error) {
		return r.gemini.GenerateText(ctx, prompt, 0.5)
	})
}

func basicTechnicalFeedback(score float64) string {
	if score >= 85 {
		return "Excellent technical understanding. Focus more on communicating trade-offs."
	}
	if score >= 60 {
		return "Good technical foundation. Add depth on edge-cases & complexity analysis."
	}
	return "Needs improvement in fundamentals and practical examples. Revise DSA and core system concepts."
}

// recommendations asks the model for the short/long-term lists with the
// documented two-stage decode. Parse failure and call failure have distinct
// fallback lists.
func (r *reportService) recommendations(ctx context.Context, eval *models.Evaluation, role string) models.Recommendations {
	if role == "" {
		role = "Software Engineer"
	}

	evaluationJSON, _ := json.MarshalIndent(eval, "", "  ")
	prompt := r.promptBuilder.BuildRecommendationsPrompt(string(evaluationJSON), role)

	response, err := r.gemini.GenerateText(ctx, prompt, 0.5)
	if err != nil {
		log.Printf("⚠️ Recommendation generation failed: %v\n", err)
		return models.Recommendations{
			ShortTerm: []string{"Review key concepts regularly."},
			LongTerm:  []string{"Build a project relevant to your target job role."},
		}
	}

	var recommendations models.Recommendations
	if err := decodeModelJSON(response, &recommendations); err != nil {
		return models.Recommendations{
			ShortTerm: []string{
				"Revise weak areas identified in the interview.",
				"Practice more problem-solving on real interview questions.",
			},
			LongTerm: []string{
				fmt.Sprintf("Work on deeper skills relevant to %s.", role),
				"Participate in peer interviews and mentorship.",
			},
		}
	}

	return recommendations
}
