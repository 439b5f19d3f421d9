package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Revanth0912/Job-Select-AI/internal/models"
	"github.com/Revanth0912/Job-Select-AI/internal/services"
)

type UploadHandler struct {
	storageService services.StorageService
	pipeline       *services.Pipeline
	maxFileSize    int64
}

func NewUploadHandler(
	storageService services.StorageService,
	pipeline *services.Pipeline,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		pipeline:       pipeline,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /resumes: stores the uploaded resume in the
// resume folder and runs it through the matching pipeline immediately.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No 'resume' file in request",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	path, err := h.storageService.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}

	// Name comes from the original filename, not the uuid-suffixed stored one.
	name := services.CandidateNameFromFilename(file.Filename)
	outcome := h.pipeline.ProcessFileAs(path, name)
	if outcome.Skipped {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Resume could not be parsed and contains no email address",
		})
	}
	if outcome.Err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process resume",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Candidate: outcome.Candidate,
		Skills:    outcome.Candidate.SkillList(),
		Status:    string(outcome.ParseStatus),
		Matches:   outcome.Matches,
	})
}
