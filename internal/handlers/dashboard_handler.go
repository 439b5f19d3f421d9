package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Revanth0912/Job-Select-AI/internal/models"
	"github.com/Revanth0912/Job-Select-AI/internal/repositories"
)

type DashboardHandler struct {
	matchRepo repositories.MatchRepository
}

func NewDashboardHandler(matchRepo repositories.MatchRepository) *DashboardHandler {
	return &DashboardHandler{matchRepo: matchRepo}
}

// HandleDashboard handles GET /dashboard. Without a job_title filter each
// candidate is shown with their best match (all tying rows on a tie);
// otherwise every candidate's row for the selected role is listed.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	selectedJob := c.Query("job_title", repositories.AllFilter)
	status := c.Query("status", repositories.AllFilter)
	minScore := c.QueryFloat("min_score", 0)

	rows, err := h.matchRepo.BestMatches(minScore, selectedJob, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load matches",
		})
	}

	titles, err := h.matchRepo.DistinctTitles()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load job titles",
		})
	}

	return c.JSON(models.DashboardResponse{
		Matches:     rows,
		JobTitles:   titles,
		SelectedJob: selectedJob,
		Status:      status,
		MinScore:    minScore,
	})
}
