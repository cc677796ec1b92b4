package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"mockmate/interview/internal/models"
)

// RoadmapService generates the personalized learning roadmap from an
// evaluation: focus areas, actions, resources.
type RoadmapService interface {
	Generate(ctx context.Context, eval *models.Evaluation, role string) *models.Roadmap
}

type roadmapService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewRoadmapService(gemini GeminiService) RoadmapService {
	return &roadmapService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

type roadmapPayload struct {
	FocusAreas []string `json:"focus_areas"`
	Actions    []string `json:"actions"`
	Resources  []string `json:"resources"`
}

// Generate implements RoadmapService. Call failure and parse failure fall
// back to fixed roadmaps; the turn never aborts on them.
func (r *roadmapService) Generate(ctx context.Context, eval *models.Evaluation, role string) *models.Roadmap {
	perQuestionJSON, _ := json.MarshalIndent(eval.PerQuestion, "", "  ")
	prompt := r.promptBuilder.BuildRoadmapPrompt(
		eval.Technical,
		eval.Communication,
		eval.Confidence,
		eval.Professionalism,
		string(perQuestionJSON),
		role,
	)

	roadmap := &models.Roadmap{
		ID:        uuid.New(),
		SessionID: eval.SessionID,
	}

	response, err := r.gemini.GenerateText(ctx, prompt, 0.5)
	if err != nil {
		log.Printf("⚠️ Roadmap generation failed: %v\n", err)
		roadmap.FocusAreas = []string{"Follow-up with mentor", "Project-based learning"}
		roadmap.Actions = []string{
			"Redo mock interviews focusing on weak topics",
			"Join a peer review study group",
		}
		roadmap.Resources = []string{
			"https://www.youtube.com/results?search_query=system+design+interview",
			"https://www.coursera.org/learn/communication-skills",
		}
		return roadmap
	}

	var payload roadmapPayload
	if err := decodeModelJSON(response, &payload); err != nil {
		roadmap.FocusAreas = []string{
			"Technical depth",
			"Confidence building",
			"Professional communication",
		}
		roadmap.Actions = []string{
			"Review weak technical topics from the interview",
			"Practice speaking answers confidently",
			"Record mock interviews for self-assessment",
		}
		roadmap.Resources = []string{
			"https://www.coursera.org/learn/communication-skills",
			"https://www.udemy.com/course/technical-interview-preparation",
		}
		return roadmap
	}

	roadmap.FocusAreas = payload.FocusAreas
	roadmap.Actions = payload.Actions
	roadmap.Resources = payload.Resources
	return roadmap
}
