package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/job-screener/internal/llm"
	"github.com/jonathan/job-screener/internal/prompts"
)

// SummaryUnavailable is substituted when the summarizer fails; summarization
// is cosmetic and its errors never propagate.
const SummaryUnavailable = "Summary not available."

// maxSummaryInputChars bounds the resume text fed to the summarizer.
const maxSummaryInputChars = 1024

// Summarizer produces a short skills-and-experience summary of resume text.
type Summarizer interface {
	Summarize(ctx context.Context, cvText string) (string, error)
}

// ContentGenerator is the LLM surface the summarizer needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// LLMSummarizer summarizes resume text through the configured model.
type LLMSummarizer struct {
	gen ContentGenerator
}

// NewLLMSummarizer creates a summarizer around gen.
func NewLLMSummarizer(gen ContentGenerator) *LLMSummarizer {
	return &LLMSummarizer{gen: gen}
}

// Summarize returns a 30-100 word abstract of the first 1024 characters of
// cvText.
func (s *LLMSummarizer) Summarize(ctx context.Context, cvText string) (string, error) {
	text := cvText
	if len(text) > maxSummaryInputChars {
		text = text[:maxSummaryInputChars]
	}

	template, err := prompts.Get("screening.json", "summarize-profile")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{"CVText": text})

	summary, err := s.gen.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("failed to summarize profile: %w", err)
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", fmt.Errorf("summarizer returned empty text")
	}
	return summary, nil
}
