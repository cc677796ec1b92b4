package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFirstQuestionPrompt creates the warm-up question prompt
func (pb *PromptBuilder) BuildFirstQuestionPrompt(difficulty string) string {
	return fmt.Sprintf(`You are an intelligent and friendly job interviewer conducting a %s-level interview.
Start the interview with a warm, general question to make the candidate comfortable.
Ask something like "Tell me about yourself" or "Can you walk me through your projects?"
Don't directly jump into resume details yet.`, difficulty)
}

// BuildNextQuestionPrompt creates the adaptive follow-up question prompt
func (pb *PromptBuilder) BuildNextQuestionPrompt(resumeSummary, previousAnswer, difficulty string) string {
	if previousAnswer == "" {
		previousAnswer = "N/A"
	}

	return fmt.Sprintf(`You are a professional interviewer conducting a %s-level interview.

Candidate's resume (for reference):
%s

Candidate's previous answer:
"%s"

Based on the above:
- If the answer mentions a specific project or skill, ask a deeper question *only* about that topic.
- If not, continue with a general follow-up (like motivation, teamwork, or learning challenges).
- Keep your question relevant, natural, and conversational.
- Avoid repeating topics already discussed.

Now ask the next best interview question.`, difficulty, resumeSummary, previousAnswer)
}

// BuildTechnicalScorePrompt creates the per-answer scoring prompt. The model
// must answer with a bare JSON object.
func (pb *PromptBuilder) BuildTechnicalScorePrompt(question, answer string) string {
	return fmt.Sprintf(`You are a senior technical interviewer.
Judge *technical accuracy, completeness, and conceptual depth*.

Question: "%s"
Candidate Answer: "%s"

Return ONLY valid JSON like:
{"score": 0-100, "feedback": "one-sentence technical evaluation"}`, question, answer)
}

// BuildTechnicalFeedbackPrompt creates the narrative technical feedback prompt
func (pb *PromptBuilder) BuildTechnicalFeedbackPrompt(score float64, perQuestionJSON, role string) string {
	if role == "" {
		role = "Software Engineer"
	}

	return fmt.Sprintf(`You are an expert technical interviewer helping evaluate a candidate for the role: %s.
Based on the following information:
- Technical score: %.2f
- Per-question feedback: %s

Provide a short paragraph of constructive, role-relevant technical feedback
that identifies what the candidate did well and what they should focus on improving.
Keep it specific and actionable, avoid generic lines.`, role, score, perQuestionJSON)
}

// BuildRecommendationsPrompt creates the short-term/long-term recommendations prompt
func (pb *PromptBuilder) BuildRecommendationsPrompt(evaluationJSON, role string) string {
	return fmt.Sprintf(`You are an AI career mentor. Based on this interview evaluation:
%s

Candidate Role: %s

Please generate actionable, specific feedback as a JSON object:
{
    "short_term": ["..."],
    "long_term": ["..."]
}`, evaluationJSON, role)
}

// BuildRoadmapPrompt creates the personalized study roadmap prompt
func (pb *PromptBuilder) BuildRoadmapPrompt(technical, communication, confidence, professionalism float64, perQuestionJSON, role string) string {
	roleLine := "The candidate's role was not specified."
	if role != "" {
		roleLine = fmt.Sprintf("Candidate role: %s", role)
	}

	return fmt.Sprintf(`You are an AI career mentor helping a candidate improve after a mock technical interview.

%s

Overall Scores:
Technical: %.2f
Communication: %.2f
Confidence: %.2f
Professionalism: %.2f

Detailed Question Feedback:
%s

Using this information:

1. Identify the candidate's top strengths and how to enhance them.
2. Identify weaknesses and how to address them with focused learning.
3. Create a roadmap JSON with these three keys:

   * "focus_areas": Top 3 areas to improve.
   * "actions": 3-5 actionable steps to take.
   * "resources": Helpful learning materials (e.g., books, tutorials, online courses).

Return ONLY valid JSON in this format:
{
  "focus_areas": ["...", "...", "..."],
  "actions": ["...", "...", "..."],
  "resources": ["...", "...", "..."]
}`, roleLine, technical, communication, confidence, professionalism, perQuestionJSON)
}
