// Package keywords derives a bounded set of salient terms from a job
// description using term-frequency weighting over a single document.
package keywords

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultNumKeywords is the keyword count used when the caller passes a
// non-positive limit.
const DefaultNumKeywords = 10

// tokenPattern matches word tokens of at least two word characters; single
// characters never count as keywords.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// InvalidInputError indicates the document is not parseable text.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Extract returns up to numKeywords distinct terms from document, ranked by
// descending term weight. With a single-document corpus the inverse document
// frequency is constant, so the weight degenerates to plain term frequency.
// Ties are broken by lexical order, ascending.
//
// Empty or all-stop-word input yields an empty slice and no error. A document
// that is not valid text fails with *InvalidInputError.
func Extract(document string, numKeywords int) ([]string, error) {
	if !utf8.ValidString(document) {
		return nil, &InvalidInputError{Message: "document is not valid UTF-8 text"}
	}
	if numKeywords <= 0 {
		numKeywords = DefaultNumKeywords
	}

	counts := termFrequencies(document)
	if len(counts) == 0 {
		return []string{}, nil
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > numKeywords {
		terms = terms[:numKeywords]
	}
	return terms, nil
}

// termFrequencies tokenizes the document and counts occurrences of each
// distinct non-stop-word term.
func termFrequencies(document string) map[string]int {
	tokens := tokenPattern.FindAllString(strings.ToLower(document), -1)
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		if englishStopWords[tok] {
			continue
		}
		counts[tok]++
	}
	return counts
}
