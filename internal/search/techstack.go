package search

import (
	"sort"
	"strings"
)

// NoTechStack is returned when none of the known technologies appear in a
// candidate's text.
const NoTechStack = "Not specified"

// techVocabulary is the fixed set of languages, frameworks, and platforms
// surfaced in search results.
var techVocabulary = []string{
	"python", "java", "c++", "c#", "javascript", "typescript", "react",
	"angular", "vue", "node.js", "flask", "django", "sql", "mysql",
	"postgresql", "mongodb", "aws", "azure", "gcp", "docker", "kubernetes",
	"tensorflow", "pytorch", "pandas", "numpy", "matplotlib",
}

// ExtractTechStack intersects the vocabulary with the candidate's text,
// case-insensitively, and returns the matches joined sorted, or the
// "Not specified" sentinel when nothing matches.
func ExtractTechStack(cvText string) string {
	text := CleanText(cvText)

	found := make([]string, 0, 4)
	for _, tech := range techVocabulary {
		if strings.Contains(text, tech) {
			found = append(found, tech)
		}
	}
	if len(found) == 0 {
		return NoTechStack
	}
	sort.Strings(found)
	return strings.Join(found, ", ")
}
