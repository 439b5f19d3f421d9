package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Revanth0912/Job-Select-AI/internal/models"
	"github.com/Revanth0912/Job-Select-AI/internal/services"
)

type EmailHandler struct {
	mailer services.Mailer
}

func NewEmailHandler(mailer services.Mailer) *EmailHandler {
	return &EmailHandler{mailer: mailer}
}

// HandleSendInterviewEmail handles POST /emails/interview. Delivery failure
// is reported to the caller; nothing escapes this handler.
func (h *EmailHandler) HandleSendInterviewEmail(c *fiber.Ctx) error {
	var req models.InterviewEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.CandidateEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidate_email is required",
		})
	}
	if req.JobTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_title is required",
		})
	}

	interviewDateTime := fmt.Sprintf("%s %s", req.InterviewDate, req.InterviewTime)
	if err := h.mailer.SendInterviewInvitation(
		c.Context(), req.CandidateEmail, req.CandidateName, req.JobTitle, interviewDateTime,
	); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to send email",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Email sent successfully",
	})
}
