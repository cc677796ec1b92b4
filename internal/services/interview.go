package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"mockmate/interview/internal/models"
	"mockmate/interview/internal/repositories"
)

// stopKeywords end the question loop when received as an answer, any letter
// case, regardless of difficulty or turn count.
var stopKeywords = map[string]bool{
	"stop": true,
	"quit": true,
	"exit": true,
}

// InterviewService drives the session lifecycle: start, the answer loop,
// and finalization into evaluation, report, and roadmap.
type InterviewService interface {
	StartInterview(ctx context.Context, sessionID, userName, difficulty string) (*models.AnswerResponse, error)
	SubmitAnswer(ctx context.Context, sessionID, userName, difficulty, currentQuestion, answer string) (*models.AnswerResponse, error)
	StopInterview(ctx context.Context, sessionID, userName, role string) (*models.StopResponse, error)
}

type interviewService struct {
	sessions    SessionStore
	resumeRepo  repositories.ResumeRepository
	evalRepo    repositories.EvaluationRepository
	reportRepo  repositories.ReportRepository
	roadmapRepo repositories.RoadmapRepository
	videoRepo   repositories.VideoRepository
	questions   QuestionService
	avatar      AvatarService
	evaluator   EvaluatorService
	reports     ReportService
	roadmaps    RoadmapService
}

func NewInterviewService(
	sessions SessionStore,
	resumeRepo repositories.ResumeRepository,
	evalRepo repositories.EvaluationRepository,
	reportRepo repositories.ReportRepository,
	roadmapRepo repositories.RoadmapRepository,
	videoRepo repositories.VideoRepository,
	questions QuestionService,
	avatar AvatarService,
	evaluator EvaluatorService,
	reports ReportService,
	roadmaps RoadmapService,
) InterviewService {
	return &interviewService{
		sessions:    sessions,
		resumeRepo:  resumeRepo,
		evalRepo:    evalRepo,
		reportRepo:  reportRepo,
		roadmapRepo: roadmapRepo,
		videoRepo:   videoRepo,
		questions:   questions,
		avatar:      avatar,
		evaluator:   evaluator,
		reports:     reports,
		roadmaps:    roadmaps,
	}
}

func IsStopKeyword(answer string) bool {
	return stopKeywords[strings.ToLower(strings.TrimSpace(answer))]
}

func (s *interviewService) profile(userName string) (*models.CandidateProfile, error) {
	resume, err := s.resumeRepo.FindLatestByUserName(userName)
	if err != nil {
		return nil, fmt.Errorf("no resume found for user: %s. Please upload resume first", userName)
	}
	return resume.Profile(), nil
}

// StartInterview implements InterviewService. Transition uninitialized →
// active: persist the empty session, generate the warm-up question, render
// its avatar video. Video failure here is surfaced to the caller since the
// video is the candidate's only interviewer output.
func (s *interviewService) StartInterview(ctx context.Context, sessionID, userName, difficulty string) (*models.AnswerResponse, error) {
	profile, err := s.profile(userName)
	if err != nil {
		return nil, err
	}

	sessionID, err = s.sessions.Start(sessionID, userName, difficulty)
	if err != nil {
		// Best effort: turns recover the record on append
		log.Printf("⚠️ Failed to persist new session %s: %v\n", sessionID, err)
	}

	log.Printf("🚀 Starting interview %s for %s (%s)\n", sessionID, userName, difficulty)

	firstQuestion, err := s.questions.FirstQuestion(ctx, profile, difficulty)
	if err != nil || firstQuestion == "" {
		return nil, fmt.Errorf("failed to generate the first question")
	}

	videoURL, err := s.generateVideo(ctx, sessionID, firstQuestion)
	if err != nil {
		return nil, err
	}

	return &models.AnswerResponse{
		Status:       models.StatusSuccess,
		SessionID:    sessionID,
		NextQuestion: firstQuestion,
		VideoURL:     videoURL,
	}, nil
}

// SubmitAnswer implements InterviewService, the active → active self-loop.
// The turn is appended durably before anything else happens, so a narration
// failure never loses the transcribed answer.
func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID, userName, difficulty, currentQuestion, answer string) (*models.AnswerResponse, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("no answer received")
	}

	profile, err := s.profile(userName)
	if err != nil {
		return nil, err
	}

	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if err := s.sessions.Append(sessionID, models.QAPair{
		Question: currentQuestion,
		Answer:   answer,
	}); err != nil {
		// Best-effort persistence: the turn still proceeds
		log.Printf("⚠️ Failed to persist turn for session %s: %v\n", sessionID, err)
	}

	if IsStopKeyword(answer) {
		s.finishSession(ctx, sessionID, userName)
		return &models.AnswerResponse{
			Status:    models.StatusFinished,
			SessionID: sessionID,
			Message:   "Interview ended.",
		}, nil
	}

	nextQuestion := attemptOr("Question generation", "", func() (string, error) {
		return s.questions.NextQuestion(ctx, profile, answer, difficulty)
	})

	// The engine declining to ask further means the interview is complete
	if nextQuestion == "" {
		s.finishSession(ctx, sessionID, userName)
		return &models.AnswerResponse{
			Status:    models.StatusFinished,
			SessionID: sessionID,
			Message:   "Interview completed.",
		}, nil
	}

	videoURL, err := s.generateVideo(ctx, sessionID, nextQuestion)
	if err != nil {
		return nil, err
	}

	return &models.AnswerResponse{
		Status:       models.StatusSuccess,
		SessionID:    sessionID,
		NextQuestion: nextQuestion,
		VideoURL:     videoURL,
	}, nil
}

func (s *interviewService) generateVideo(ctx context.Context, sessionID, question string) (string, error) {
	videoURL, err := s.avatar.GenerateVideo(ctx, question)
	if err != nil || videoURL == "" {
		log.Printf("❌ Avatar video generation failed for session %s: %v\n", sessionID, err)
		return "", fmt.Errorf("failed to generate avatar video; please try again later")
	}

	if err := s.videoRepo.Create(&models.InterviewVideo{
		ID:        uuid.New(),
		SessionID: sessionID,
		Question:  question,
		VideoURL:  videoURL,
	}); err != nil {
		log.Printf("⚠️ Failed to persist video URL for session %s: %v\n", sessionID, err)
	}

	return videoURL, nil
}

// finishSession runs the finalization pipeline for turns that end the
// interview from inside the answer loop. Failures are logged; the finished
// response to the candidate goes out regardless.
func (s *interviewService) finishSession(ctx context.Context, sessionID, userName string) {
	if _, err := s.finalize(ctx, sessionID, userName, ""); err != nil {
		log.Printf("⚠️ Failed to finalize session %s: %v\n", sessionID, err)
	}
}

// StopInterview implements InterviewService, the explicit active → finalized
// transition. Stopping an unknown or already-finalized session is an error.
func (s *interviewService) StopInterview(ctx context.Context, sessionID, userName, role string) (*models.StopResponse, error) {
	return s.finalize(ctx, sessionID, userName, role)
}

// finalize evaluates the full turn sequence and derives the report and
// roadmap. Persistence of the artifacts is best effort; the response carries
// the computed results either way.
func (s *interviewService) finalize(ctx context.Context, sessionID, userName, role string) (*models.StopResponse, error) {
	session, err := s.sessions.Finalize(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID")
	}

	log.Printf("🛑 Finalizing interview %s for %s\n", sessionID, userName)

	evaluation := s.evaluator.Evaluate(ctx, sessionID, session.QAPairs)
	evaluation.UserName = userName
	if err := s.evalRepo.Create(evaluation); err != nil {
		log.Printf("⚠️ Failed to save evaluation for session %s: %v\n", sessionID, err)
	}

	report := s.reports.Compile(ctx, evaluation, role)
	if err := s.reportRepo.Create(report); err != nil {
		log.Printf("⚠️ Failed to save report for session %s: %v\n", sessionID, err)
	}

	roadmap := s.roadmaps.Generate(ctx, evaluation, role)
	roadmap.UserName = userName
	if err := s.roadmapRepo.Create(roadmap); err != nil {
		log.Printf("⚠️ Failed to save roadmap for session %s: %v\n", sessionID, err)
	}

	return &models.StopResponse{
		Status:     models.StatusSuccess,
		SessionID:  sessionID,
		Evaluation: evaluation,
		Report:     report.Payload(),
		Roadmap:    roadmap,
		Message:    fmt.Sprintf("That concludes our interview, %s. Thank you!", userName),
	}, nil
}
