package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/job-screener/internal/types"
)

// roleMatchThreshold is the minimum embedding similarity between a prompt's
// role filter and a stored job role for the record to survive filtering.
const roleMatchThreshold = 0.5

// RecordSource loads the screening records a search runs over.
type RecordSource interface {
	FetchAll(ctx context.Context) ([]types.SemanticRecord, error)
}

// SimilarityScorer scores semantic similarity between two texts.
type SimilarityScorer interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Engine answers free-form recruiter prompts over screened candidates.
type Engine struct {
	records    RecordSource
	scorer     SimilarityScorer
	summarizer Summarizer
}

// NewEngine creates a search engine. summarizer may be nil, in which case
// every result carries the unavailable-summary placeholder.
func NewEngine(records RecordSource, scorer SimilarityScorer, summarizer Summarizer) *Engine {
	return &Engine{records: records, scorer: scorer, summarizer: summarizer}
}

// Search parses prompt and resolves it against the stored records. It returns
// a single result for summarize prompts and up to topN ranked results for
// filter prompts. Embedding failures abort the call; summarization failures
// degrade the affected result's summary only.
func (e *Engine) Search(ctx context.Context, prompt string) ([]types.SearchResult, error) {
	records, err := e.records.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate records: %w", err)
	}
	if len(records) == 0 {
		return nil, &NoDataError{}
	}

	intent := ParseIntent(prompt)
	if intent.IsSummarize() {
		return e.summarizeOne(ctx, intent.SummarizeOne, records)
	}
	return e.filterAndRank(ctx, prompt, intent, records)
}

func (e *Engine) summarizeOne(ctx context.Context, query string, records []types.SemanticRecord) ([]types.SearchResult, error) {
	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}

	name, ok := closestName(query, names)
	if !ok {
		return nil, &CandidateNotFoundError{Query: query}
	}

	for _, rec := range records {
		if rec.Name == name {
			return []types.SearchResult{e.buildResult(ctx, rec)}, nil
		}
	}
	return nil, &CandidateNotFoundError{Query: query}
}

func (e *Engine) filterAndRank(ctx context.Context, prompt string, intent Intent, records []types.SemanticRecord) ([]types.SearchResult, error) {
	cleanPrompt := CleanText(prompt)

	type scored struct {
		rec types.SemanticRecord
		sim float64
	}

	var candidates []scored
	for _, rec := range records {
		if intent.RoleFilter != "" {
			roleSim, err := e.scorer.Similarity(ctx, intent.RoleFilter, rec.JobRole)
			if err != nil {
				return nil, err
			}
			if roleSim < roleMatchThreshold {
				continue
			}
		}

		if !hasAllSkills(CleanText(rec.CVText), intent.RequiredSkills) {
			continue
		}

		sim, err := e.scorer.Similarity(ctx, cleanPrompt, rec.CVText)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, scored{rec: rec, sim: sim})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sim > candidates[j].sim
	})

	seen := make(map[string]bool)
	var results []types.SearchResult
	for _, c := range candidates {
		if seen[c.rec.Email] {
			continue
		}
		seen[c.rec.Email] = true
		results = append(results, e.buildResult(ctx, c.rec))
		if len(results) >= intent.TopN {
			break
		}
	}

	if len(results) == 0 {
		return nil, &NoMatchError{RoleFilter: intent.RoleFilter, RequiredSkills: intent.RequiredSkills}
	}
	return results, nil
}

func hasAllSkills(cleanCV string, skills []string) bool {
	for _, skill := range skills {
		if !strings.Contains(cleanCV, skill) {
			return false
		}
	}
	return true
}

func (e *Engine) buildResult(ctx context.Context, rec types.SemanticRecord) types.SearchResult {
	summary := SummaryUnavailable
	if e.summarizer != nil {
		if s, err := e.summarizer.Summarize(ctx, rec.CVText); err == nil {
			summary = s
		}
	}
	return types.SearchResult{
		Name:             rec.Name,
		Email:            rec.Email,
		SkillsExperience: summary,
		TechStack:        ExtractTechStack(rec.CVText),
	}
}
