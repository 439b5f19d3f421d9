package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
	"github.com/rs/zerolog/log"
)

// SkillSet is a case-folded set of skill tokens.
type SkillSet map[string]struct{}

// Contains reports whether the set holds the given skill.
func (s SkillSet) Contains(skill string) bool {
	_, ok := s[skill]
	return ok
}

// Sorted returns the skills as a sorted slice, for stable persistence and
// display.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// ExtractSkills derives a skill set from raw resume text:
//
//  1. every vocabulary skill appearing as a substring of the lower-cased
//     text is added. There is no word-boundary check, so short tokens such
//     as "r" can match inside longer words; that is an accepted accuracy
//     trade-off carried over from the reference behavior.
//  2. every noun or proper-noun token longer than 3 characters reported by
//     the part-of-speech tagger is added, unfiltered.
//
// A tagger failure degrades to vocabulary-only extraction.
func (m *Matcher) ExtractSkills(text string) SkillSet {
	lowered := strings.ToLower(text)
	skills := make(SkillSet)

	for _, skill := range m.vocabulary {
		if strings.Contains(lowered, skill) {
			skills[skill] = struct{}{}
		}
	}

	if strings.TrimSpace(lowered) == "" {
		return skills
	}

	doc, err := prose.NewDocument(lowered, prose.WithExtraction(false))
	if err != nil {
		log.Warn().Err(err).Msg("part-of-speech tagging failed, using keyword matches only")
		return skills
	}

	for _, tok := range doc.Tokens() {
		switch tok.Tag {
		case "NN", "NNS", "NNP", "NNPS":
			if utf8.RuneCountInString(tok.Text) > 3 {
				skills[tok.Text] = struct{}{}
			}
		}
	}

	return skills
}
