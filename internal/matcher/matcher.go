package matcher

import (
	"math"
	"sort"

	"github.com/Revanth0912/Job-Select-AI/internal/catalog"
)

// JobScore is the match result for a single catalog role.
//
// MatchedSkills and MissingSkills partition the role's required-skill list:
// their union is always the full list and they never overlap. MissingSkills
// keeps the required-skill order.
type JobScore struct {
	JobTitle      string   `json:"job_title"`
	BaseScore     float64  `json:"base_score"`
	WeightedScore float64  `json:"weighted_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Matcher scores skill sets against an immutable role catalog.
type Matcher struct {
	catalog    *catalog.Catalog
	vocabulary []string
}

// New returns a matcher over the given catalog.
func New(c *catalog.Catalog) *Matcher {
	return &Matcher{
		catalog:    c,
		vocabulary: c.Vocabulary(),
	}
}

// Catalog returns the catalog the matcher scores against.
func (m *Matcher) Catalog() *catalog.Catalog {
	return m.catalog
}

// MatchText extracts skills from raw resume text and scores them.
func (m *Matcher) MatchText(text string) []JobScore {
	return m.Match(m.ExtractSkills(text))
}

// Match scores the skill set against every role in the catalog. No
// threshold filtering happens here; callers apply their own minimum to the
// returned list. Results are sorted by weighted score descending, with
// catalog order kept on ties.
func (m *Matcher) Match(skills SkillSet) []JobScore {
	roles := m.catalog.Roles()
	results := make([]JobScore, 0, len(roles))

	for _, role := range roles {
		matched := make([]string, 0, len(role.Skills))
		missing := make([]string, 0, len(role.Skills))
		var weighted float64

		for _, skill := range role.Skills {
			if skills.Contains(skill) {
				matched = append(matched, skill)
				weighted += m.catalog.Weight(skill)
			} else {
				missing = append(missing, skill)
			}
		}

		base := float64(len(matched)) / float64(len(role.Skills)) * 100

		results = append(results, JobScore{
			JobTitle:      role.Title,
			BaseScore:     round1(base),
			WeightedScore: round1(weighted),
			MatchedSkills: matched,
			MissingSkills: missing,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].WeightedScore > results[j].WeightedScore
	})

	return results
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
