package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Revanth0912/Job-Select-AI/internal/models"
)

// AllFilter disables the job-title or status filter on list queries.
const AllFilter = "all"

type MatchRepository interface {
	ReplaceForCandidate(candidateID uint, matches []models.JobMatch) error
	BestMatches(minScore float64, jobTitle, status string) ([]models.DashboardRow, error)
	FindByCandidateAndTitle(candidateID uint, jobTitle string) (*models.JobMatch, error)
	FindByID(id uint) (*models.JobMatch, error)
	UpdateStatus(id uint, status string) error
	DistinctTitles() ([]string, error)
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// ReplaceForCandidate deletes every existing match row for the candidate
// and bulk-inserts the new ones. Matches are recomputed wholesale on every
// re-processing; there is no incremental update.
func (r *matchRepository) ReplaceForCandidate(candidateID uint, matches []models.JobMatch) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", candidateID).Delete(&models.JobMatch{}).Error; err != nil {
			return fmt.Errorf("failed to delete old matches: %w", err)
		}
		if len(matches) == 0 {
			return nil
		}
		for i := range matches {
			matches[i].CandidateID = candidateID
		}
		if err := tx.Create(&matches).Error; err != nil {
			return fmt.Errorf("failed to insert matches: %w", err)
		}
		return nil
	})
}

const dashboardColumns = `c.id AS candidate_id, c.name, c.email,
m.id AS match_id, m.job_title, m.base_score, m.weighted_score,
m.matched_skills, m.missing_skills, m.status`

// BestMatches returns the review list. With jobTitle set to AllFilter each
// candidate contributes the match row with their maximum weighted score;
// when two roles tie at that maximum, all tying rows are returned, so a
// candidate can appear more than once. With a concrete jobTitle every
// candidate's row for that role is returned. minScore filters on weighted
// score; status filters unless set to AllFilter.
func (r *matchRepository) BestMatches(minScore float64, jobTitle, status string) ([]models.DashboardRow, error) {
	q := r.db.Table("candidates AS c").Select(dashboardColumns)

	if jobTitle == "" || jobTitle == AllFilter {
		best := r.db.Model(&models.JobMatch{}).
			Select("candidate_id, MAX(weighted_score) AS max_score").
			Group("candidate_id")
		q = q.
			Joins("JOIN (?) AS best ON best.candidate_id = c.id", best).
			Joins("JOIN job_matches m ON m.candidate_id = best.candidate_id AND m.weighted_score = best.max_score")
	} else {
		q = q.
			Joins("JOIN job_matches m ON m.candidate_id = c.id").
			Where("m.job_title = ?", jobTitle)
	}

	q = q.Where("m.weighted_score >= ?", minScore)
	if status != "" && status != AllFilter {
		q = q.Where("m.status = ?", status)
	}

	var rows []models.DashboardRow
	if err := q.Order("m.weighted_score DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query best matches: %w", err)
	}
	return rows, nil
}

func (r *matchRepository) FindByCandidateAndTitle(candidateID uint, jobTitle string) (*models.JobMatch, error) {
	var match models.JobMatch
	err := r.db.
		Where("candidate_id = ? AND job_title = ?", candidateID, jobTitle).
		First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match not found")
		}
		return nil, fmt.Errorf("failed to find match: %w", err)
	}
	return &match, nil
}

func (r *matchRepository) FindByID(id uint) (*models.JobMatch, error) {
	var match models.JobMatch
	if err := r.db.Where("id = ?", id).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match not found")
		}
		return nil, fmt.Errorf("failed to find match: %w", err)
	}
	return &match, nil
}

// UpdateStatus sets the review status and refreshes last_updated.
func (r *matchRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.JobMatch{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"last_updated": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("match not found")
	}
	return nil
}

// DistinctTitles lists the job titles present in job_matches, for the
// dashboard filter control.
func (r *matchRepository) DistinctTitles() ([]string, error) {
	var titles []string
	err := r.db.Model(&models.JobMatch{}).
		Distinct().
		Order("job_title").
		Pluck("job_title", &titles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}
	return titles, nil
}
