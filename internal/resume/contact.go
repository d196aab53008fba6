package resume

import (
	"regexp"
	"strings"
)

// Sentinel values returned when no contact details can be extracted.
const (
	UnknownEmail = "N/A"
	UnknownName  = "Unknown Candidate"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	// labelPattern strips words that commonly precede the candidate name
	// and would otherwise be mistaken for it.
	labelPattern = regexp.MustCompile(`(?i)\b(Resume|Candidate)\b[:\s]*`)
	namePattern  = regexp.MustCompile(`Name:\s*([A-Z][a-z]+\s+[A-Z][a-z]+)`)
)

// ExtractEmail returns the first RFC-plausible email address in the text, or
// the sentinel "N/A" when none is present.
func ExtractEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	return UnknownEmail
}

// ExtractName returns a best-effort two-token title-cased candidate name. It
// prefers an explicit "Name: First Last" label, then falls back to the first
// pair of adjacent title-cased words, then to the sentinel "Unknown
// Candidate".
func ExtractName(text string) string {
	text = labelPattern.ReplaceAllString(text, "")

	if m := namePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	words := strings.Fields(text)
	for i := 0; i+1 < len(words); i++ {
		if isTitleCased(words[i]) && isTitleCased(words[i+1]) {
			return words[i] + " " + words[i+1]
		}
	}
	return UnknownName
}

// isTitleCased reports whether the word is an upper-case letter followed by
// lower-case letters.
func isTitleCased(word string) bool {
	if len(word) < 2 {
		return false
	}
	if word[0] < 'A' || word[0] > 'Z' {
		return false
	}
	for i := 1; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
