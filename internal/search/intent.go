package search

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultTopN is the result limit used when the prompt does not name one.
const DefaultTopN = 5

// Intent is the parsed form of a recruiter prompt: either a request to
// summarize one named candidate, or a filter-and-rank query. Exactly one of
// the two variants is set.
type Intent struct {
	// SummarizeOne holds the name fragment of a summarize request; empty
	// for filter/rank prompts.
	SummarizeOne string

	// Filter/rank slots. Each is optional and degrades to its default when
	// the prompt does not mention it.
	TopN           int
	RoleFilter     string
	RequiredSkills []string
}

// IsSummarize reports whether the prompt asked for a single candidate
// summary.
func (in Intent) IsSummarize() bool {
	return in.SummarizeOne != ""
}

var (
	nonAlnumPattern  = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	summarizePattern = regexp.MustCompile(`(?:summarize|summary\s+of)\s+([a-zA-Z\s]+)`)
	topNPattern      = regexp.MustCompile(`(?:top|best|give\s+me|show|give)\s*(\d+)`)
	rolePattern      = regexp.MustCompile(`(?:for|of|to|as)\s+([a-zA-Z\s]+)`)
	skillPattern     = regexp.MustCompile(`(?:knowledge\s+of|with|having)\s+([a-zA-Z0-9+#.\-]+)`)
)

// CleanText strips non-alphanumeric characters and lowercases, the
// normalization applied to prompts and to stored text before substring
// matching.
func CleanText(text string) string {
	return strings.ToLower(strings.TrimSpace(nonAlnumPattern.ReplaceAllString(text, "")))
}

// ParseIntent classifies a prompt. The prompt is normalized first; slot
// extraction is regex-based and best-effort, and a missing pattern never
// fails: it degrades to the slot's default.
func ParseIntent(prompt string) Intent {
	clean := CleanText(prompt)

	if m := summarizePattern.FindStringSubmatch(clean); m != nil {
		return Intent{SummarizeOne: strings.TrimSpace(m[1])}
	}

	intent := Intent{TopN: DefaultTopN}

	if m := topNPattern.FindStringSubmatch(clean); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			intent.TopN = n
		}
	}

	if m := rolePattern.FindStringSubmatch(clean); m != nil {
		role := m[1]
		role = strings.ReplaceAll(role, "role", "")
		role = strings.ReplaceAll(role, "position", "")
		intent.RoleFilter = strings.TrimSpace(role)
	}

	for _, m := range skillPattern.FindAllStringSubmatch(clean, -1) {
		if skill := CleanText(m[1]); skill != "" {
			intent.RequiredSkills = append(intent.RequiredSkills, skill)
		}
	}

	return intent
}
