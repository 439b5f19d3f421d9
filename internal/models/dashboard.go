package models

import "github.com/Revanth0912/Job-Select-AI/internal/matcher"

// DashboardRow is one entry of the review list: a candidate joined with one
// of their match rows. When job_title=all the row is the candidate's best
// match; two roles tying at the candidate's maximum weighted score both
// appear.
type DashboardRow struct {
	CandidateID   uint    `json:"candidate_id"`
	MatchID       uint    `json:"match_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	JobTitle      string  `json:"job_title"`
	BaseScore     float64 `json:"base_score"`
	WeightedScore float64 `json:"weighted_score"`
	MatchedSkills string  `json:"matched_skills"`
	MissingSkills string  `json:"missing_skills"`
	Status        string  `json:"status"`
}

// DashboardResponse is the list-view payload.
type DashboardResponse struct {
	Matches     []DashboardRow `json:"matches"`
	JobTitles   []string       `json:"job_titles"`
	SelectedJob string         `json:"selected_job"`
	Status      string         `json:"status"`
	MinScore    float64        `json:"min_score"`
}

// ScoreResponse is the per-candidate, per-role detail payload.
type ScoreResponse struct {
	BaseScore     float64  `json:"base_score"`
	WeightedScore float64  `json:"weighted_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// StatusUpdateRequest changes a match's review status.
type StatusUpdateRequest struct {
	MatchID uint   `json:"match_id" form:"match_id"`
	Status  string `json:"status" form:"status"`
}

// InterviewEmailRequest triggers an interview-invitation email.
type InterviewEmailRequest struct {
	CandidateEmail string `json:"candidate_email" form:"candidate_email"`
	CandidateName  string `json:"candidate_name" form:"candidate_name"`
	JobTitle       string `json:"job_title" form:"job_title"`
	InterviewDate  string `json:"interview_date" form:"interview_date"`
	InterviewTime  string `json:"interview_time" form:"interview_time"`
}

// UploadResponse reports the outcome of an uploaded-and-processed resume.
type UploadResponse struct {
	Candidate *Candidate         `json:"candidate"`
	Skills    []string           `json:"skills"`
	Status    string             `json:"parse_status"`
	Matches   []matcher.JobScore `json:"matches"`
}
