package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-screener/internal/llm"
)

type fakeGen struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGen) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestSummarize(t *testing.T) {
	gen := &fakeGen{response: "  Backend engineer with five years of Go.  "}
	s := NewLLMSummarizer(gen)

	summary, err := s.Summarize(context.Background(), "Go developer resume text")
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer with five years of Go.", summary)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Go developer resume text")
}

func TestSummarizeBoundsInput(t *testing.T) {
	gen := &fakeGen{response: "A summary."}
	s := NewLLMSummarizer(gen)

	long := strings.Repeat("a", 2000) + "TAIL"
	_, err := s.Summarize(context.Background(), long)
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	assert.NotContains(t, gen.prompts[0], "TAIL")
}

func TestSummarizeBackendFailure(t *testing.T) {
	s := NewLLMSummarizer(&fakeGen{err: errors.New("overloaded")})

	_, err := s.Summarize(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to summarize profile")
}

func TestSummarizeEmptyResponse(t *testing.T) {
	s := NewLLMSummarizer(&fakeGen{response: "   "})

	_, err := s.Summarize(context.Background(), "text")
	require.Error(t, err)
}
