package models

const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusFinished = "finished"
)

// AnswerRequest is the /api/interview/answer form payload. VoiceName is
// accepted for backward compatibility but the default presenter is used.
type AnswerRequest struct {
	SessionID       string `form:"session_id"`
	UserName        string `form:"user_name" validate:"required"`
	Difficulty      string `form:"difficulty" validate:"required"`
	VoiceName       string `form:"voice_name"`
	CurrentQuestion string `form:"current_question" validate:"required"`
	UserAnswer      string `form:"user_answer"`
}

type AnswerResponse struct {
	Status       string  `json:"status"`
	SessionID    string  `json:"session_id"`
	Message      string  `json:"message,omitempty"`
	NextQuestion string  `json:"next_question,omitempty"`
	AudioBase64  *string `json:"audio_base64"`
	AudioURL     *string `json:"audio_url"`
	VideoURL     string  `json:"video_url"`
}

type StopRequest struct {
	SessionID  string `json:"session_id" validate:"required"`
	UserName   string `json:"user_name" validate:"required"`
	Difficulty string `json:"difficulty"`
	Role       string `json:"role"`
}

type StopResponse struct {
	Status     string         `json:"status"`
	SessionID  string         `json:"session_id"`
	Evaluation *Evaluation    `json:"evaluation"`
	Report     *ReportPayload `json:"report"`
	Roadmap    *Roadmap       `json:"roadmap"`
	Message    string         `json:"message"`
}
