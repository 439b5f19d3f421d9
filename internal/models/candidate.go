package models

import (
	"strings"
	"time"
)

// Candidate is one processed resume. Email and ResumePath are unique;
// re-processing a resume replaces the identity fields and wholesale
// recomputes the candidate's matches.
type Candidate struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"type:text;not null" json:"name"`
	Email      string     `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Phone      string     `gorm:"type:text" json:"phone,omitempty"`
	Skills     string     `gorm:"type:text" json:"skills"`
	ResumePath string     `gorm:"type:text;uniqueIndex;not null" json:"resume_path"`
	CreatedAt  time.Time  `json:"created_at"`
	Matches    []JobMatch `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// SkillList splits the comma-joined skill column back into a slice.
func (c *Candidate) SkillList() []string {
	if c.Skills == "" {
		return nil
	}
	return strings.Split(c.Skills, ",")
}
