package screening

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/job-screener/internal/db"
	"github.com/jonathan/job-screener/internal/resume"
	"github.com/jonathan/job-screener/internal/types"
)

// Notifier sends an interview invitation to a shortlisted candidate.
type Notifier interface {
	SendInvitation(ctx context.Context, email, name, jobRole string, score int) error
}

// ProgressEvent reports one step of a screening run.
type ProgressEvent struct {
	RunID   string `json:"run_id"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// ProgressFunc receives progress events as the pipeline advances.
type ProgressFunc func(event ProgressEvent)

// Pipeline processes a batch of resume files against one job description.
// Files are handled strictly sequentially: there is no fan-out, so the
// existence-check-then-insert in the candidate store stays race-free.
type Pipeline struct {
	shortlister *Shortlister
	semantic    *db.SemanticStore
	notifier    Notifier     // nil disables invitations
	progress    ProgressFunc // nil disables reporting
	extract     func(path string) (string, error)
}

// NewPipeline assembles a screening pipeline. notifier and progress may be
// nil.
func NewPipeline(candidates *db.CandidateStore, semantic *db.SemanticStore, notifier Notifier, progress ProgressFunc) *Pipeline {
	return &Pipeline{
		shortlister: NewShortlister(candidates),
		semantic:    semantic,
		notifier:    notifier,
		progress:    progress,
		extract:     resume.ExtractText,
	}
}

// SetNumKeywords overrides how many job description keywords scoring uses.
func (p *Pipeline) SetNumKeywords(n int) {
	p.shortlister.SetNumKeywords(n)
}

// Run screens every resume file in order and returns one outcome per file.
// Per-resume failures (unreadable file, store write failure) are recorded in
// the outcome and reported through progress events; they never abort the
// remaining files. Email dispatch failures are cosmetic and only reported.
func (p *Pipeline) Run(ctx context.Context, jdText, jobRole string, resumePaths []string) ([]types.ScreeningOutcome, error) {
	runID := uuid.New().String()
	p.report(runID, "start", fmt.Sprintf("screening %d resumes for role %q", len(resumePaths), jobRole))

	outcomes := make([]types.ScreeningOutcome, 0, len(resumePaths))
	for _, path := range resumePaths {
		outcomes = append(outcomes, p.processOne(ctx, runID, path, jdText, jobRole))
	}

	p.report(runID, "done", fmt.Sprintf("processed %d resumes", len(outcomes)))
	return outcomes, nil
}

func (p *Pipeline) processOne(ctx context.Context, runID, path, jdText, jobRole string) types.ScreeningOutcome {
	cvText, err := p.extract(path)
	if err != nil {
		p.report(runID, "extract", fmt.Sprintf("%s: %v", path, err))
		return types.ScreeningOutcome{Name: resume.BaseName(path), Email: resume.UnknownEmail, Note: err.Error()}
	}

	email := resume.ExtractEmail(cvText)
	name := resume.ExtractName(cvText)
	if name == resume.UnknownName {
		name = resume.BaseName(path)
	}

	outcome := types.ScreeningOutcome{Name: name, Email: email}

	score, err := p.shortlister.Shortlist(ctx, cvText, email, name, jdText, jobRole)
	outcome.Score = score
	if err != nil {
		outcome.Note = err.Error()
		p.report(runID, "shortlist", fmt.Sprintf("%s: %v", email, err))
	}
	outcome.Shortlisted = err == nil && score >= ShortlistThreshold

	// The semantic store records every screening event, whatever the score.
	if err := p.semantic.Insert(ctx, types.SemanticRecord{
		Name:    name,
		Email:   email,
		Score:   score,
		CVText:  cvText,
		JDText:  jdText,
		JobRole: jobRole,
	}); err != nil {
		if outcome.Note == "" {
			outcome.Note = err.Error()
		}
		p.report(runID, "persist", fmt.Sprintf("failed to save data for %s: %v", name, err))
	}

	if outcome.Shortlisted && p.notifier != nil {
		if err := p.notifier.SendInvitation(ctx, email, name, jobRole, score); err != nil {
			// Cosmetic failure: the shortlisting decision stands.
			p.report(runID, "notify", fmt.Sprintf("failed to email %s: %v", email, err))
		} else {
			p.report(runID, "notify", fmt.Sprintf("invitation sent to %s", email))
		}
	}

	p.report(runID, "scored", fmt.Sprintf("%s scored %d", name, score))
	return outcome
}

func (p *Pipeline) report(runID, stage, message string) {
	if p.progress != nil {
		p.progress(ProgressEvent{RunID: runID, Stage: stage, Message: message})
	}
}
