package logic

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"multiselect/internal/domain"
)

// Suggest returns the label closest to query by edit distance, for a
// "did you mean" hint. Only labels within a third of the query length
// (at least one edit) qualify; ties go to the earlier option.
func Suggest(options []domain.Option, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	maxDist := len([]rune(q)) / 3
	if maxDist < 1 {
		maxDist = 1
	}

	best, bestDist := "", maxDist+1
	for _, opt := range options {
		d := levenshtein.ComputeDistance(q, strings.ToLower(opt.Label))
		if d < bestDist {
			best, bestDist = opt.Label, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
