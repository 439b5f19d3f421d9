package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Revanth0912/Job-Select-AI/internal/models"
)

type CandidateRepository interface {
	UpsertByEmail(candidate *models.Candidate) (*models.Candidate, error)
	FindByID(id uint) (*models.Candidate, error)
	FindByEmail(email string) (*models.Candidate, error)
	Delete(id uint) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// UpsertByEmail inserts the candidate or, when the email already exists,
// replaces the identity fields and skill list (last write wins). The stored
// row, including its ID, is returned.
func (r *candidateRepository) UpsertByEmail(candidate *models.Candidate) (*models.Candidate, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "phone", "skills", "resume_path",
		}),
	}).Create(candidate).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert candidate: %w", err)
	}

	// The conflict path does not report the existing row's ID, so read it
	// back by the unique email.
	return r.FindByEmail(candidate.Email)
}

func (r *candidateRepository) FindByID(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("candidate not found")
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

func (r *candidateRepository) FindByEmail(email string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("email = ?", email).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("candidate not found")
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// Delete removes the candidate; the foreign-key constraint cascades to the
// candidate's job_matches rows.
func (r *candidateRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Candidate{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete candidate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}
	return nil
}
