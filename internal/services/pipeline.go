package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Revanth0912/Job-Select-AI/internal/matcher"
	"github.com/Revanth0912/Job-Select-AI/internal/models"
	"github.com/Revanth0912/Job-Select-AI/internal/parser"
	"github.com/Revanth0912/Job-Select-AI/internal/repositories"
)

// resumeExtensions are the file types the batch scanner picks up.
var resumeExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".docx": true,
}

var titleCaser = cases.Title(language.English)

// FileOutcome reports what happened to one resume file.
type FileOutcome struct {
	Path        string
	ParseStatus parser.Status
	Candidate   *models.Candidate
	Matches     []matcher.JobScore
	Skipped     bool
	Err         error
}

// Pipeline runs extract → skill-extract → match → persist for resume files.
// Everything is synchronous; batch processing is strictly sequential.
type Pipeline struct {
	candidates repositories.CandidateRepository
	matches    repositories.MatchRepository
	matcher    *matcher.Matcher
	minScore   float64
}

func NewPipeline(
	candidates repositories.CandidateRepository,
	matches repositories.MatchRepository,
	m *matcher.Matcher,
	minScore float64,
) *Pipeline {
	return &Pipeline{
		candidates: candidates,
		matches:    matches,
		matcher:    m,
		minScore:   minScore,
	}
}

// ProcessFile processes one resume, deriving the candidate name from the
// file name.
func (p *Pipeline) ProcessFile(path string) FileOutcome {
	return p.ProcessFileAs(path, CandidateNameFromFilename(filepath.Base(path)))
}

// ProcessFileAs processes one resume under the given candidate name. A file
// that yields no text and no email address is skipped, whether extraction
// failed or the file was simply empty; a file with an extractable email is
// stored even when its text is empty.
func (p *Pipeline) ProcessFileAs(path, name string) FileOutcome {
	outcome := FileOutcome{Path: path}

	result := parser.Extract(path)
	outcome.ParseStatus = result.Status

	if result.Email == parser.EmailNotFound &&
		(result.Status == parser.StatusFailed || strings.TrimSpace(result.Text) == "") {
		log.Warn().Str("file", path).Msg("skipping resume with no usable text")
		outcome.Skipped = true
		outcome.Err = result.Err
		return outcome
	}

	skills := p.matcher.ExtractSkills(result.Text)
	scores := p.matcher.Match(skills)

	candidate, err := p.candidates.UpsertByEmail(&models.Candidate{
		Name:       name,
		Email:      result.Email,
		Skills:     strings.Join(skills.Sorted(), ","),
		ResumePath: path,
	})
	if err != nil {
		outcome.Err = fmt.Errorf("failed to store candidate: %w", err)
		return outcome
	}

	rows := make([]models.JobMatch, len(scores))
	now := time.Now()
	for i, score := range scores {
		rows[i] = models.JobMatch{
			JobTitle:      score.JobTitle,
			BaseScore:     score.BaseScore,
			WeightedScore: score.WeightedScore,
			MatchedSkills: strings.Join(score.MatchedSkills, ","),
			MissingSkills: strings.Join(score.MissingSkills, ","),
			Status:        models.StatusPending,
			LastUpdated:   now,
		}
	}
	if err := p.matches.ReplaceForCandidate(candidate.ID, rows); err != nil {
		outcome.Err = fmt.Errorf("failed to store matches: %w", err)
		return outcome
	}

	outcome.Candidate = candidate
	outcome.Matches = scores
	p.logSummary(candidate, scores)
	return outcome
}

// ProcessDirectory runs the pipeline over every resume file in a directory,
// fully sequentially. A failure on one file is logged and skipped; the
// batch continues with the next file.
func (p *Pipeline) ProcessDirectory(dir string) ([]FileOutcome, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume folder: %w", err)
	}

	var outcomes []FileOutcome
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !resumeExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		outcome := p.ProcessFile(filepath.Join(dir, entry.Name()))
		if outcome.Err != nil {
			log.Error().Err(outcome.Err).Str("file", outcome.Path).Msg("resume processing failed")
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (p *Pipeline) logSummary(candidate *models.Candidate, scores []matcher.JobScore) {
	above := 0
	for _, s := range scores {
		if s.BaseScore >= p.minScore {
			above++
		}
	}

	event := log.Info().
		Str("candidate", candidate.Name).
		Str("email", candidate.Email).
		Int("roles_above_threshold", above)
	if len(scores) > 0 {
		event = event.
			Str("top_role", scores[0].JobTitle).
			Float64("top_weighted_score", scores[0].WeightedScore)
	}
	event.Msg("resume processed")
}

// CandidateNameFromFilename turns a resume file name into a display name:
// extension stripped, underscores to spaces, title-cased.
func CandidateNameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return titleCaser.String(strings.ReplaceAll(base, "_", " "))
}
