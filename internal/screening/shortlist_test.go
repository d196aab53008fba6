package screening

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-screener/internal/db"
)

const testJD = "golang golang golang developer developer backend backend " +
	"sql sql docker docker kubernetes grpc postgres redis"

// qualifyingCV repeats enough JD keywords to clear the threshold.
var qualifyingCV = strings.TrimSpace(strings.Repeat("golang sql docker backend developer ", 4))

func newShortlister(t *testing.T) *Shortlister {
	path := filepath.Join(t.TempDir(), "candidates.db")
	return NewShortlister(db.NewCandidateStore(path))
}

func TestShortlist_InsertsAboveThreshold(t *testing.T) {
	s := newShortlister(t)
	ctx := context.Background()

	score, err := s.Shortlist(ctx, qualifyingCV, "a@example.com", "Alice Adams", testJD, "Backend Engineer")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, ShortlistThreshold)

	candidates, err := s.candidates.List(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "a@example.com", candidates[0].Email)
	assert.Equal(t, score, candidates[0].Score)
}

func TestShortlist_Idempotent(t *testing.T) {
	s := newShortlister(t)
	ctx := context.Background()

	first, err := s.Shortlist(ctx, qualifyingCV, "a@example.com", "Alice Adams", testJD, "Backend Engineer")
	require.NoError(t, err)
	second, err := s.Shortlist(ctx, qualifyingCV, "a@example.com", "Alice Adams", testJD, "Backend Engineer")
	require.NoError(t, err)

	// The second call is a persistence no-op but still returns the score.
	assert.Equal(t, first, second)

	candidates, err := s.candidates.List(ctx)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestShortlist_BelowThresholdNotPersisted(t *testing.T) {
	s := newShortlister(t)
	ctx := context.Background()

	score, err := s.Shortlist(ctx, "unrelated text entirely", "b@example.com", "Bob", testJD, "Backend Engineer")
	require.NoError(t, err)
	assert.Less(t, score, ShortlistThreshold)

	candidates, err := s.candidates.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestShortlist_ReturnsScoreAlongsidePersistenceError(t *testing.T) {
	// A store path inside a missing directory fails on first write.
	s := NewShortlister(db.NewCandidateStore(filepath.Join(t.TempDir(), "missing", "candidates.db")))

	score, err := s.Shortlist(context.Background(), qualifyingCV, "a@example.com", "Alice Adams", testJD, "Backend Engineer")
	require.Error(t, err)
	var pe *db.PersistenceError
	assert.ErrorAs(t, err, &pe)
	assert.GreaterOrEqual(t, score, ShortlistThreshold)
}
