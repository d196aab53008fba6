// Package screening orchestrates resume scoring, shortlisting, and
// persistence for a single job description.
package screening

import (
	"context"

	"github.com/jonathan/job-screener/internal/db"
	"github.com/jonathan/job-screener/internal/keywords"
	"github.com/jonathan/job-screener/internal/scoring"
	"github.com/jonathan/job-screener/internal/types"
)

// ShortlistThreshold is the minimum ATS score that qualifies a candidate for
// the candidate store and an interview invitation.
const ShortlistThreshold = 70

// Shortlister computes ATS scores and persists qualifying candidates.
type Shortlister struct {
	candidates  *db.CandidateStore
	numKeywords int
}

// NewShortlister returns a Shortlister writing to the given candidate store.
func NewShortlister(candidates *db.CandidateStore) *Shortlister {
	return &Shortlister{candidates: candidates, numKeywords: keywords.DefaultNumKeywords}
}

// SetNumKeywords overrides how many job description keywords the score is
// computed against. Values below 1 keep the default.
func (s *Shortlister) SetNumKeywords(n int) {
	if n > 0 {
		s.numKeywords = n
	}
}

// Shortlist extracts keywords from the job description, scores the resume
// text against them, and inserts the candidate when the score clears the
// threshold and the email has not been seen before.
//
// The computed score is returned unconditionally, including below threshold
// and alongside a persistence error, so callers can record it regardless of
// the shortlisting outcome.
func (s *Shortlister) Shortlist(ctx context.Context, cvText, email, name, jdText, jobRole string) (int, error) {
	jdKeywords, err := keywords.Extract(jdText, s.numKeywords)
	if err != nil {
		return 0, err
	}

	score := scoring.CalculateATSScore(cvText, jdKeywords)
	if score < ShortlistThreshold {
		return score, nil
	}

	_, err = s.candidates.InsertIfAbsent(ctx, types.Candidate{
		Name:    name,
		Email:   email,
		Score:   score,
		JobRole: jobRole,
	})
	if err != nil {
		return score, err
	}
	return score, nil
}
