package handlers

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mockmate/interview/internal/models"
	"mockmate/interview/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
	transcriber      services.TranscriberService
	presenterName    string
	voiceID          string
	validate         *validator.Validate
}

func NewInterviewHandler(
	interviewService services.InterviewService,
	transcriber services.TranscriberService,
	presenterName string,
	voiceID string,
) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		transcriber:      transcriber,
		presenterName:    presenterName,
		voiceID:          voiceID,
		validate:         validator.New(),
	}
}

// HandleVoices handles GET /api/interview/voices
func (h *InterviewHandler) HandleVoices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    models.StatusSuccess,
		"message":   "Using D-ID default presenter with built-in voice",
		"presenter": h.presenterName,
		"voice":     h.voiceID,
	})
}

// HandleAnswer handles POST /api/interview/answer. The literal question
// "start" begins a session; every other call must carry a non-empty answer,
// transcribed from the uploaded audio when one is attached.
func (h *InterviewHandler) HandleAnswer(c *fiber.Ctx) error {
	var req models.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  models.StatusError,
			"message": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  models.StatusError,
			"message": "user_name, difficulty and current_question are required",
		})
	}

	// Speech → text
	if audioFile, err := c.FormFile("audio_file"); err == nil && audioFile != nil {
		src, err := audioFile.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  models.StatusError,
				"message": "Failed to read uploaded audio",
			})
		}
		defer src.Close()

		transcript, err := h.transcriber.Transcribe(c.Context(), src, audioFile.Filename)
		if err != nil {
			log.Printf("⚠️ Transcription failed: %v\n", err)
		} else {
			log.Printf("🗣️ Transcribed answer: %s\n", transcript)
			req.UserAnswer = transcript
		}
	}

	if strings.EqualFold(strings.TrimSpace(req.CurrentQuestion), "start") {
		resp, err := h.interviewService.StartInterview(
			c.Context(), req.SessionID, req.UserName, req.Difficulty,
		)
		if err != nil {
			return c.JSON(fiber.Map{
				"status":  models.StatusError,
				"message": err.Error(),
			})
		}
		return c.JSON(resp)
	}

	resp, err := h.interviewService.SubmitAnswer(
		c.Context(), req.SessionID, req.UserName, req.Difficulty,
		req.CurrentQuestion, req.UserAnswer,
	)
	if err != nil {
		return c.JSON(fiber.Map{
			"status":  models.StatusError,
			"message": err.Error(),
		})
	}

	return c.JSON(resp)
}

// HandleStop handles POST /api/interview/stop
func (h *InterviewHandler) HandleStop(c *fiber.Ctx) error {
	var req models.StopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  models.StatusError,
			"message": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  models.StatusError,
			"message": "session_id and user_name are required",
		})
	}

	resp, err := h.interviewService.StopInterview(
		c.Context(), req.SessionID, req.UserName, req.Role,
	)
	if err != nil {
		return c.JSON(fiber.Map{
			"status":  models.StatusError,
			"message": err.Error(),
		})
	}

	return c.JSON(resp)
}
