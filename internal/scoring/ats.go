// Package scoring computes a bounded ATS match score between candidate text
// and a job-description keyword set.
package scoring

import (
	"math"
	"strings"
)

// denominatorPadding damps the score so that short keyword sets cannot
// saturate at 100% on any text containing a few matches.
const denominatorPadding = 5

// CalculateATSScore returns an integer score in [0,100] measuring keyword
// overlap between text and keywords. The text is split on whitespace into
// lowercase tokens and each token is matched literally against the keyword
// set, with repeated occurrences counted every time. No stemming and no
// punctuation stripping is applied.
//
// The function is pure: no I/O, deterministic given identical inputs.
func CalculateATSScore(text string, jdKeywords []string) int {
	keywordSet := make(map[string]bool, len(jdKeywords))
	for _, kw := range jdKeywords {
		keywordSet[kw] = true
	}

	matched := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if keywordSet[word] {
			matched++
		}
	}

	denom := len(jdKeywords) + denominatorPadding
	if denom < 1 {
		denom = 1
	}

	score := int(math.Round(float64(matched) / float64(denom) * 100))
	if score > 100 {
		score = 100
	}
	return score
}
