package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"mockmate/interview/internal/models"
)

type fakeResumeRepo struct {
	resumes map[string]*models.Resume
}

func (f *fakeResumeRepo) Create(resume *models.Resume) error {
	if f.resumes == nil {
		f.resumes = make(map[string]*models.Resume)
	}
	f.resumes[resume.UserName] = resume
	return nil
}

func (f *fakeResumeRepo) FindLatestByUserName(userName string) (*models.Resume, error) {
	resume, ok := f.resumes[userName]
	if !ok {
		return nil, fmt.Errorf("resume not found")
	}
	return resume, nil
}

type fakeEvalRepo struct{ saved []*models.Evaluation }

func (f *fakeEvalRepo) Create(eval *models.Evaluation) error {
	f.saved = append(f.saved, eval)
	return nil
}

func (f *fakeEvalRepo) FindBySessionID(string) (*models.Evaluation, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeReportRepo struct{ saved []*models.Report }

func (f *fakeReportRepo) Create(report *models.Report) error {
	f.saved = append(f.saved, report)
	return nil
}

func (f *fakeReportRepo) FindBySessionID(string) (*models.Report, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeRoadmapRepo struct{ saved []*models.Roadmap }

func (f *fakeRoadmapRepo) Create(roadmap *models.Roadmap) error {
	f.saved = append(f.saved, roadmap)
	return nil
}

func (f *fakeRoadmapRepo) FindBySessionID(string) (*models.Roadmap, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeVideoRepo struct{ saved []*models.InterviewVideo }

func (f *fakeVideoRepo) Create(video *models.InterviewVideo) error {
	f.saved = append(f.saved, video)
	return nil
}

func (f *fakeVideoRepo) FindBySessionID(string) ([]models.InterviewVideo, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeQuestions struct {
	first string
	next  []string
	err   error
	turn  int
}

func (f *fakeQuestions) FirstQuestion(context.Context, *models.CandidateProfile, string) (string, error) {
	return f.first, f.err
}

func (f *fakeQuestions) NextQuestion(context.Context, *models.CandidateProfile, string, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.turn >= len(f.next) {
		return "", nil
	}
	question := f.next[f.turn]
	f.turn++
	return question, nil
}

type fakeAvatar struct {
	url string
	err error
}

func (f *fakeAvatar) GenerateVideo(context.Context, string) (string, error) {
	return f.url, f.err
}

type interviewFixture struct {
	service     InterviewService
	store       SessionStore
	resumeRepo  *fakeResumeRepo
	evalRepo    *fakeEvalRepo
	reportRepo  *fakeReportRepo
	roadmapRepo *fakeRoadmapRepo
	videoRepo   *fakeVideoRepo
	questions   *fakeQuestions
	avatar      *fakeAvatar
}

func newInterviewFixture(questions *fakeQuestions, avatar *fakeAvatar) *interviewFixture {
	resumeRepo := &fakeResumeRepo{}
	resumeRepo.Create(&models.Resume{
		UserName: "John Doe",
		Skills:   models.StringList{"python", "sql"},
		Sections: models.SectionMap{"experience": "Built pipelines"},
	})

	store := NewSessionStore(newFakeInterviewRepo())
	evalRepo := &fakeEvalRepo{}
	reportRepo := &fakeReportRepo{}
	roadmapRepo := &fakeRoadmapRepo{}
	videoRepo := &fakeVideoRepo{}

	gemini := &fakeGemini{err: fmt.Errorf("offline")}

	service := NewInterviewService(
		store,
		resumeRepo,
		evalRepo,
		reportRepo,
		roadmapRepo,
		videoRepo,
		questions,
		avatar,
		NewEvaluatorService(gemini),
		NewReportService(gemini),
		NewRoadmapService(gemini),
	)

	return &interviewFixture{
		service:     service,
		store:       store,
		resumeRepo:  resumeRepo,
		evalRepo:    evalRepo,
		reportRepo:  reportRepo,
		roadmapRepo: roadmapRepo,
		videoRepo:   videoRepo,
		questions:   questions,
		avatar:      avatar,
	}
}

func TestIsStopKeyword(t *testing.T) {
	require.True(t, IsStopKeyword("stop"))
	require.True(t, IsStopKeyword("QUIT"))
	require.True(t, IsStopKeyword("  Exit  "))
	require.False(t, IsStopKeyword("I would like to stop talking about this"))
	require.False(t, IsStopKeyword(""))
}

func TestStartInterview(t *testing.T) {
	fx := newInterviewFixture(
		&fakeQuestions{first: "Tell me about yourself."},
		&fakeAvatar{url: "https://cdn.example.com/q1.mp4"},
	)

	resp, err := fx.service.StartInterview(context.Background(), "", "John Doe", "medium")
	require.NoError(t, err)
	require.Equal(t, models.StatusSuccess, resp.Status)
	require.NotEmpty(t, resp.SessionID)
	require.Equal(t, "Tell me about yourself.", resp.NextQuestion)
	require.Equal(t, "https://cdn.example.com/q1.mp4", resp.VideoURL)
	require.Nil(t, resp.AudioBase64)
	require.Nil(t, resp.AudioURL)

	require.Len(t, fx.videoRepo.saved, 1)
	require.Equal(t, resp.SessionID, fx.videoRepo.saved[0].SessionID)
}

func TestStartInterview_NoResume(t *testing.T) {
	fx := newInterviewFixture(&fakeQuestions{first: "Q"}, &fakeAvatar{url: "u"})

	_, err := fx.service.StartInterview(context.Background(), "", "Stranger", "medium")
	require.Error(t, err)
	require.Contains(t, err.Error(), "upload resume first")
}

func TestStartInterview_VideoFailureAborts(t *testing.T) {
	fx := newInterviewFixture(
		&fakeQuestions{first: "Q"},
		&fakeAvatar{err: fmt.Errorf("d-id down")},
	)

	_, err := fx.service.StartInterview(context.Background(), "", "John Doe", "medium")
	require.Error(t, err)
	require.Contains(t, err.Error(), "avatar video")
	require.Empty(t, fx.videoRepo.saved)
}

func TestSubmitAnswer_FullInterview(t *testing.T) {
	fx := newInterviewFixture(
		&fakeQuestions{
			first: "Q1",
			next:  []string{"Q2", "Q3"},
		},
		&fakeAvatar{url: "https://cdn.example.com/v.mp4"},
	)

	start, err := fx.service.StartInterview(context.Background(), "", "John Doe", "medium")
	require.NoError(t, err)
	sessionID := start.SessionID

	resp, err := fx.service.SubmitAnswer(context.Background(), sessionID, "John Doe", "medium", "Q1", "answer one")
	require.NoError(t, err)
	require.Equal(t, models.StatusSuccess, resp.Status)
	require.Equal(t, "Q2", resp.NextQuestion)

	resp, err = fx.service.SubmitAnswer(context.Background(), sessionID, "John Doe", "medium", "Q2", "answer two")
	require.NoError(t, err)
	require.Equal(t, "Q3", resp.NextQuestion)

	pairs, err := fx.store.Pairs(sessionID)
	require.NoError(t, err)
	require.Equal(t, []models.QAPair{
		{Question: "Q1", Answer: "answer one"},
		{Question: "Q2", Answer: "answer two"},
	}, pairs)
}

func TestSubmitAnswer_EmptyAnswer(t *testing.T) {
	fx := newInterviewFixture(&fakeQuestions{first: "Q"}, &fakeAvatar{url: "u"})

	_, err := fx.service.SubmitAnswer(context.Background(), "sess", "John Doe", "medium", "Q1", "   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no answer received")
}

func TestSubmitAnswer_StopKeywordFinishes(t *testing.T) {
	fx := newInterviewFixture(
		&fakeQuestions{first: "Q1", next: []string{"Q2"}},
		&fakeAvatar{url: "u"},
	)

	start, err := fx.service.StartInterview(context.Background(), "", "John Doe", "hard")
	require.NoError(t, err)

	resp, err := fx.service.SubmitAnswer(context.Background(), start.SessionID, "John Doe", "hard", "Q1", "STOP")
	require.NoError(t, err)
	require.Equal(t, models.StatusFinished, resp.Status)
	require.Empty(t, resp.NextQuestion)
	require.Equal(t, "Interview ended.", resp.Message)

	// The stop keyword finalized the session and derived the artifacts
	require.Len(t, fx.evalRepo.saved, 1)
	require.Len(t, fx.reportRepo.saved, 1)
	require.Len(t, fx.roadmapRepo.saved, 1)

	_, err = fx.service.StopInterview(context.Background(), start.SessionID, "John Doe", "")
	require.Error(t, err)
}

func TestSubmitAnswer_EngineDeclinedFinishes(t *testing.T) {
	fx := newInterviewFixture(
		&fakeQuestions{first: "Q1"},
		&fakeAvatar{url: "u"},
	)

	start, err := fx.service.StartInterview(context.Background(), "", "John Doe", "easy")
	require.NoError(t, err)

	// No further canned questions: the engine declines
	resp, err := fx.service.SubmitAnswer(context.Background(), start.SessionID, "John Doe", "easy", "Q1", "my answer")
	require.NoError(t, err)
	require.Equal(t, models.StatusFinished, resp.Status)
	require.Equal(t, "Interview completed.", resp.Message)

	// Declining also finalizes
	require.Len(t, fx.evalRepo.saved, 1)
	_, err = fx.service.StopInterview(context.Background(), start.SessionID, "John Doe", "")
	require.Error(t, err)
}

func TestStopInterview(t *testing.T) {
	fx := newInterviewFixture(
		&fakeQuestions{first: "Q1", next: []string{"Q2"}},
		&fakeAvatar{url: "u"},
	)

	start, err := fx.service.StartInterview(context.Background(), "", "John Doe", "medium")
	require.NoError(t, err)

	_, err = fx.service.SubmitAnswer(context.Background(), start.SessionID, "John Doe", "medium", "Q1", "I built a data pipeline with my team")
	require.NoError(t, err)

	resp, err := fx.service.StopInterview(context.Background(), start.SessionID, "John Doe", "Data Engineer")
	require.NoError(t, err)
	require.Equal(t, models.StatusSuccess, resp.Status)
	require.Equal(t, "That concludes our interview, John Doe. Thank you!", resp.Message)

	require.NotNil(t, resp.Evaluation)
	require.False(t, resp.Evaluation.Incomplete)
	require.Len(t, resp.Evaluation.PerQuestion, 1)

	require.NotNil(t, resp.Report)
	require.NotEmpty(t, resp.Report.Feedback.Technical)
	require.NotEmpty(t, resp.Report.Recommendations.ShortTerm)

	require.NotNil(t, resp.Roadmap)
	require.NotEmpty(t, resp.Roadmap.FocusAreas)

	// Artifacts persisted
	require.Len(t, fx.evalRepo.saved, 1)
	require.Len(t, fx.reportRepo.saved, 1)
	require.Len(t, fx.roadmapRepo.saved, 1)

	// The session is gone for further stops
	_, err = fx.service.StopInterview(context.Background(), start.SessionID, "John Doe", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid session ID")
}

func TestStopInterview_ZeroTurns(t *testing.T) {
	fx := newInterviewFixture(&fakeQuestions{first: "Q1"}, &fakeAvatar{url: "u"})

	start, err := fx.service.StartInterview(context.Background(), "", "John Doe", "medium")
	require.NoError(t, err)

	resp, err := fx.service.StopInterview(context.Background(), start.SessionID, "John Doe", "")
	require.NoError(t, err)

	require.True(t, resp.Evaluation.Incomplete)
	require.Zero(t, resp.Evaluation.Technical)
	require.Zero(t, resp.Evaluation.Communication)
	require.Zero(t, resp.Evaluation.Confidence)
	require.Zero(t, resp.Evaluation.Professionalism)
	require.Empty(t, resp.Evaluation.PerQuestion)

	require.Contains(t, resp.Report.Feedback.Technical, "Interview incomplete.")
	require.Equal(t, "Unable to evaluate - no responses recorded.", resp.Report.Feedback.Communication)
}

func TestStopInterview_UnknownSession(t *testing.T) {
	fx := newInterviewFixture(&fakeQuestions{first: "Q"}, &fakeAvatar{url: "u"})

	_, err := fx.service.StopInterview(context.Background(), "ghost", "John Doe", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid session ID")
}
