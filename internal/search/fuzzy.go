package search

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// nameMatchCutoff is the minimum similarity ratio for a fuzzy name match,
// tolerant of minor spelling differences in the prompt.
const nameMatchCutoff = 0.6

// closestName returns the stored name most similar to query, provided its
// ratio clears the cutoff. Comparison is case-insensitive.
func closestName(query string, names []string) (string, bool) {
	query = strings.ToLower(query)

	best := ""
	bestRatio := 0.0
	for _, name := range names {
		ratio := sequenceRatio(query, strings.ToLower(name))
		if ratio >= nameMatchCutoff && ratio > bestRatio {
			best = name
			bestRatio = ratio
		}
	}
	return best, best != ""
}

// sequenceRatio computes a difflib sequence-match ratio over characters.
func sequenceRatio(a, b string) float64 {
	m := difflib.NewMatcher(splitChars(a), splitChars(b))
	return m.Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
