package models

import (
	"strings"
	"time"
)

// Review statuses. The set is open: the status column stores whatever
// string the review interface submits, these are just the well-known ones.
const (
	StatusPending      = "Pending"
	StatusReviewed     = "Reviewed"
	StatusInterviewing = "Interviewing"
	StatusAccepted     = "Accepted"
	StatusRejected     = "Rejected"
)

// JobMatch is one candidate's score against one catalog role.
// MatchedSkills and MissingSkills are comma-joined and together cover the
// role's full required-skill list.
type JobMatch struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CandidateID   uint      `gorm:"not null;index:idx_job_matches_candidate" json:"candidate_id"`
	JobTitle      string    `gorm:"type:text;not null" json:"job_title"`
	BaseScore     float64   `gorm:"not null" json:"base_score"`
	WeightedScore float64   `gorm:"not null;index:idx_job_matches_score,sort:desc" json:"weighted_score"`
	MatchedSkills string    `gorm:"type:text" json:"matched_skills"`
	MissingSkills string    `gorm:"type:text" json:"missing_skills"`
	Status        string    `gorm:"type:text;default:'Pending';index:idx_job_matches_status" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	LastUpdated   time.Time `json:"last_updated"`
}

func (JobMatch) TableName() string {
	return "job_matches"
}

// MatchedSkillList splits the comma-joined matched skills.
func (m *JobMatch) MatchedSkillList() []string {
	return splitSkills(m.MatchedSkills)
}

// MissingSkillList splits the comma-joined missing skills.
func (m *JobMatch) MissingSkillList() []string {
	return splitSkills(m.MissingSkills)
}

func splitSkills(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}
