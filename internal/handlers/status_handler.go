package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Revanth0912/Job-Select-AI/internal/models"
	"github.com/Revanth0912/Job-Select-AI/internal/repositories"
)

type StatusHandler struct {
	matchRepo repositories.MatchRepository
}

func NewStatusHandler(matchRepo repositories.MatchRepository) *StatusHandler {
	return &StatusHandler{matchRepo: matchRepo}
}

// HandleUpdateStatus handles POST /matches/status. A persistence failure is
// reported back as a transient notice; it is never propagated.
func (h *StatusHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.MatchID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "match_id is required",
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	if err := h.matchRepo.UpdateStatus(req.MatchID, req.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update status",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Status updated successfully",
	})
}
