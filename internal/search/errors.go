package search

import (
	"fmt"
	"strings"
)

// NoDataError indicates the semantic store holds no screening records.
type NoDataError struct{}

func (e *NoDataError) Error() string {
	return "no candidate data found"
}

// CandidateNotFoundError indicates a summarize prompt named a candidate that
// fuzzy matching could not resolve.
type CandidateNotFoundError struct {
	Query string
}

func (e *CandidateNotFoundError) Error() string {
	return fmt.Sprintf("no candidate matching %q found", e.Query)
}

// NoMatchError indicates the role and skill filters eliminated every
// candidate. It carries the attempted filters for diagnostics.
type NoMatchError struct {
	RoleFilter     string
	RequiredSkills []string
}

func (e *NoMatchError) Error() string {
	if e.RoleFilter == "" && len(e.RequiredSkills) == 0 {
		return "no candidates matched the prompt"
	}
	return fmt.Sprintf("no matching candidates found for role %q with skills %q",
		e.RoleFilter, strings.Join(e.RequiredSkills, ", "))
}
