// services/suggest.go
package services

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/holidayengine/resolver/models"
	"github.com/holidayengine/resolver/utils"
)

const (
	suggestionFloor = 0.5
	substringBoost  = 0.7
	prefixBoost     = 0.8
	maxSuggestions  = 5
)

// SuggestionEngine ranks well-known city names by string similarity to a
// failed query. It is the last tier and its output is never cached.
type SuggestionEngine struct {
	// reference holds (display name, normalized name) pairs; normalizing
	// once at construction keeps Suggest allocation-light.
	reference []referenceName
}

type referenceName struct {
	display    string
	normalized string
}

// NewSuggestionEngine builds an engine over the given display names
// (typically the curated city list, or large-airport municipalities when
// no curated list exists).
func NewSuggestionEngine(names []string) *SuggestionEngine {
	e := &SuggestionEngine{reference: make([]referenceName, 0, len(names))}
	for _, name := range names {
		normalized := utils.Normalize(name)
		if normalized == "" {
			continue
		}
		e.reference = append(e.reference, referenceName{display: name, normalized: normalized})
	}
	return e
}

// similarityRatio maps Levenshtein distance to a ratio in [0, 1].
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(maxLen)
}

// Suggest returns up to five candidates with similarity >= 0.5, best
// first. Containment of one string in the other boosts the score to at
// least 0.7, a shared prefix to at least 0.8.
func (e *SuggestionEngine) Suggest(normalizedKey string) []models.Suggestion {
	if normalizedKey == "" {
		return nil
	}

	var results []models.Suggestion
	for _, ref := range e.reference {
		score := similarityRatio(normalizedKey, ref.normalized)

		if strings.Contains(ref.normalized, normalizedKey) || strings.Contains(normalizedKey, ref.normalized) {
			score = math.Max(score, substringBoost)
		}
		if strings.HasPrefix(ref.normalized, normalizedKey) || strings.HasPrefix(normalizedKey, ref.normalized) {
			score = math.Max(score, prefixBoost)
		}

		if score >= suggestionFloor {
			results = append(results, models.Suggestion{CityName: ref.display, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	return results
}
