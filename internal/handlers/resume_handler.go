package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"mockmate/interview/internal/models"
	"mockmate/interview/internal/repositories"
	"mockmate/interview/internal/services"
)

const rawPreviewLimit = 500

type ResumeHandler struct {
	storage    services.StorageService
	parser     services.ResumeParserService
	resumeRepo repositories.ResumeRepository
}

func NewResumeHandler(
	storage services.StorageService,
	parser services.ResumeParserService,
	resumeRepo repositories.ResumeRepository,
) *ResumeHandler {
	return &ResumeHandler{
		storage:    storage,
		parser:     parser,
		resumeRepo: resumeRepo,
	}
}

// HandleUpload handles POST /api/resume/upload. The candidate name used to
// key later interview lookups is derived from the uploaded filename.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  models.StatusError,
			"message": "No file uploaded. Use the 'file' form field.",
		})
	}

	savedFilename, filePath, err := h.storage.SaveFile(file, "resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  models.StatusError,
			"message": err.Error(),
		})
	}

	text, err := h.parser.ExtractText(filePath)
	if err != nil {
		log.Printf("❌ Failed to extract resume text: %v\n", err)
		if delErr := h.storage.DeleteFile(savedFilename); delErr != nil {
			log.Printf("⚠️ Failed to clean up file %s: %v\n", savedFilename, delErr)
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  models.StatusError,
			"message": "Failed to extract text from resume",
		})
	}

	userName := services.CandidateNameFromFilename(file.Filename)
	skills := h.parser.ExtractSkills(text)
	sections := h.parser.ExtractSections(text)

	preview := text
	if len(preview) > rawPreviewLimit {
		preview = preview[:rawPreviewLimit]
	}

	resume := &models.Resume{
		UserName:   userName,
		Filename:   savedFilename,
		Skills:     skills,
		Sections:   sections,
		RawPreview: preview,
	}

	if err := h.resumeRepo.Create(resume); err != nil {
		log.Printf("❌ Failed to store resume: %v\n", err)
		if delErr := h.storage.DeleteFile(savedFilename); delErr != nil {
			log.Printf("⚠️ Failed to clean up file %s: %v\n", savedFilename, delErr)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  models.StatusError,
			"message": "Failed to store resume",
		})
	}

	log.Printf("✅ Resume stored for %s (%d skills, %d sections)\n", userName, len(skills), len(sections))

	return c.JSON(fiber.Map{
		"status":    models.StatusSuccess,
		"message":   "Resume uploaded and parsed successfully",
		"user_name": userName,
		"skills":    skills,
		"sections":  sections,
	})
}

// HandleResumeRoot handles GET /api/resume/ as a liveness check for the
// resume subsystem.
func (h *ResumeHandler) HandleResumeRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  models.StatusSuccess,
		"message": "Resume service is running",
	})
}
