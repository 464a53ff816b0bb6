package usecase

import (
	"math"
	"sort"

	"github.com/internmatch/backend/internal/domain"
)

// Scoring weights: satisfying the student's stated interests counts more
// than covering all of a posting's requirements. Fixed policy constants,
// not configurable.
const (
	preferenceWeight = 0.6
	skillWeight      = 0.4
)

// scoreDigits is the number of decimal digits scores are rounded to.
const scoreDigits = 4

// Matcher scores internship postings against a student's preference set.
// It is a pure function of its inputs: no I/O, no hidden state, safe to
// call concurrently from any number of goroutines.
type Matcher struct{}

// NewMatcher creates a new matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Rank scores every internship in the catalog against the given preference
// tokens and returns the matches sorted by score descending. Internships
// with a score of zero are excluded entirely. Ties keep the catalog's input
// order. The result is truncated to at most limit entries; a negative limit
// is clamped to zero.
func (m *Matcher) Rank(preferences []string, catalog []domain.Internship, limit int) []domain.MatchResult {
	if limit < 0 {
		limit = 0
	}

	prefSet := normalizeTokenSet(preferences)

	results := make([]domain.MatchResult, 0, len(catalog))
	for _, internship := range catalog {
		results = append(results, domain.MatchResult{
			Score:      scoreSets(prefSet, normalizeTokenSet(internship.Skills)),
			Internship: internship,
		})
	}

	// Stable sort so equal scores preserve catalog order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	top := results[:0]
	for _, r := range results {
		if len(top) == limit {
			break
		}
		if r.Score <= 0 {
			continue
		}
		top = append(top, r)
	}

	return top
}

// Score computes the match score between a preference list and a skill
// list. Both sides are normalized to lowercase deduplicated sets first.
func (m *Matcher) Score(preferences, skills []string) float64 {
	return scoreSets(normalizeTokenSet(preferences), normalizeTokenSet(skills))
}

// scoreSets computes the weighted coverage score for already-normalized
// token sets. A posting with no skills never matches. With an empty
// preference set the overlap is necessarily zero, so the score is zero.
func scoreSets(prefs, skills map[string]bool) float64 {
	if len(skills) == 0 {
		return 0.0
	}

	overlap := 0
	for token := range skills {
		if prefs[token] {
			overlap++
		}
	}

	prefCoverage := 0.0
	if len(prefs) > 0 {
		prefCoverage = float64(overlap) / float64(len(prefs))
	}
	skillCoverage := float64(overlap) / float64(len(skills))

	return roundScore(preferenceWeight*prefCoverage + skillWeight*skillCoverage)
}

// roundScore rounds to scoreDigits decimal digits.
func roundScore(score float64) float64 {
	shift := math.Pow(10, scoreDigits)
	return math.Round(score*shift) / shift
}
