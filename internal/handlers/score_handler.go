package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/Revanth0912/Job-Select-AI/internal/models"
	"github.com/Revanth0912/Job-Select-AI/internal/repositories"
)

type ScoreHandler struct {
	candidateRepo repositories.CandidateRepository
	matchRepo     repositories.MatchRepository
}

func NewScoreHandler(candidateRepo repositories.CandidateRepository, matchRepo repositories.MatchRepository) *ScoreHandler {
	return &ScoreHandler{candidateRepo: candidateRepo, matchRepo: matchRepo}
}

// HandleGetScores handles GET /scores/:candidateID/:jobTitle and returns
// the matched/missing skill breakdown for one candidate against one role.
func (h *ScoreHandler) HandleGetScores(c *fiber.Ctx) error {
	candidateID, err := c.ParamsInt("candidateID")
	if err != nil || candidateID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID",
		})
	}

	jobTitle := c.Params("jobTitle")
	if decoded, decErr := url.PathUnescape(jobTitle); decErr == nil {
		jobTitle = decoded
	}

	if _, err := h.candidateRepo.FindByID(uint(candidateID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	match, err := h.matchRepo.FindByCandidateAndTitle(uint(candidateID), jobTitle)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Match not found",
		})
	}

	return c.JSON(models.ScoreResponse{
		BaseScore:     match.BaseScore,
		WeightedScore: match.WeightedScore,
		MatchedSkills: match.MatchedSkillList(),
		MissingSkills: match.MissingSkillList(),
	})
}
