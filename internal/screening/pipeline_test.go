package screening

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-screener/internal/db"
)

// recordingNotifier captures invitations and optionally fails.
type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) SendInvitation(_ context.Context, email, _, _ string, _ int) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, email)
	return nil
}

func newTestPipeline(t *testing.T, notifier Notifier) (*Pipeline, *db.SemanticStore) {
	dir := t.TempDir()
	candidates := db.NewCandidateStore(filepath.Join(dir, "candidates.db"))
	semantic := db.NewSemanticStore(filepath.Join(dir, "semantic.db"))
	p := NewPipeline(candidates, semantic, notifier, nil)
	return p, semantic
}

func fakeResumes(texts map[string]string) func(string) (string, error) {
	return func(path string) (string, error) {
		text, ok := texts[path]
		if !ok {
			return "", fmt.Errorf("unreadable resume %s", path)
		}
		return text, nil
	}
}

func TestPipeline_ScreensSequentially(t *testing.T) {
	notifier := &recordingNotifier{}
	p, semantic := newTestPipeline(t, notifier)
	p.extract = fakeResumes(map[string]string{
		"good.pdf": "Name: Alice Adams\nalice@example.com\n" + qualifyingCV,
		"weak.pdf": "Name: Bob Brown\nbob@example.com\nGardening and pottery.",
	})

	outcomes, err := p.Run(context.Background(), testJD, "Backend Engineer", []string{"good.pdf", "weak.pdf"})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, "Alice Adams", outcomes[0].Name)
	assert.Equal(t, "alice@example.com", outcomes[0].Email)
	assert.True(t, outcomes[0].Shortlisted)

	assert.Equal(t, "Bob Brown", outcomes[1].Name)
	assert.False(t, outcomes[1].Shortlisted)

	// Only the shortlisted candidate is invited.
	assert.Equal(t, []string{"alice@example.com"}, notifier.sent)

	// Every screening event lands in the semantic store regardless of score.
	records, err := semantic.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestPipeline_UnreadableResumeDoesNotAbortRun(t *testing.T) {
	p, semantic := newTestPipeline(t, nil)
	p.extract = fakeResumes(map[string]string{
		"ok.pdf": "Name: Cara Cole\ncara@example.com\nSome experience.",
	})

	outcomes, err := p.Run(context.Background(), testJD, "Backend Engineer", []string{"broken.pdf", "ok.pdf"})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.NotEmpty(t, outcomes[0].Note)
	assert.Equal(t, "Cara Cole", outcomes[1].Name)

	// The unreadable file produced no semantic record; the readable one did.
	records, err := semantic.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestPipeline_NotifierFailureIsCosmetic(t *testing.T) {
	notifier := &recordingNotifier{err: fmt.Errorf("smtp unreachable")}
	p, _ := newTestPipeline(t, notifier)
	p.extract = fakeResumes(map[string]string{
		"good.pdf": "Name: Alice Adams\nalice@example.com\n" + qualifyingCV,
	})

	var events []ProgressEvent
	p.progress = func(e ProgressEvent) { events = append(events, e) }

	outcomes, err := p.Run(context.Background(), testJD, "Backend Engineer", []string{"good.pdf"})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	// The shortlisting decision stands even though the email failed.
	assert.True(t, outcomes[0].Shortlisted)
	assert.Empty(t, outcomes[0].Note)

	var sawNotifyFailure bool
	for _, e := range events {
		if e.Stage == "notify" {
			sawNotifyFailure = true
		}
	}
	assert.True(t, sawNotifyFailure)
}

func TestPipeline_FallsBackToFileNameForUnknownName(t *testing.T) {
	p, _ := newTestPipeline(t, nil)
	p.extract = fakeResumes(map[string]string{
		"/uploads/mystery_candidate.pdf": "no names here, just lowercase text and mystery@example.com",
	})

	outcomes, err := p.Run(context.Background(), testJD, "Backend Engineer", []string{"/uploads/mystery_candidate.pdf"})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "mystery_candidate", outcomes[0].Name)
	assert.Equal(t, "mystery@example.com", outcomes[0].Email)
}
