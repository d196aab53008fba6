package notify

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-screener/internal/llm"
)

type fakeGen struct {
	body string
	err  error
}

func (f *fakeGen) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.body, f.err
}

type fakeSender struct {
	to, subject, body string
	err               error
}

func (f *fakeSender) Send(to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

func TestSendInvitation_UsesGeneratedBody(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(&fakeGen{body: "Dear Alice,\n\nPlease come interview."}, sender)

	err := d.SendInvitation(context.Background(), "alice@example.com", "Alice Adams", "Backend Engineer", 83)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", sender.to)
	assert.Equal(t, "Interview Invitation for Backend Engineer Role", sender.subject)
	assert.Contains(t, sender.body, "Please come interview.")
}

func TestSendInvitation_FallsBackWhenGenerationFails(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(&fakeGen{err: fmt.Errorf("model unavailable")}, sender)

	err := d.SendInvitation(context.Background(), "alice@example.com", "Alice Adams", "Backend Engineer", 83)
	require.NoError(t, err)

	assert.Contains(t, sender.body, "Dear Alice Adams")
	assert.Contains(t, sender.body, "83%")
	assert.Contains(t, sender.body, "Backend Engineer")
	// The instruction line never reaches the recipient.
	assert.NotContains(t, sender.body, "Write a professional")
}

func TestSendInvitation_NilGeneratorUsesTemplate(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(nil, sender)

	err := d.SendInvitation(context.Background(), "bob@example.com", "Bob Brown", "Data Scientist", 91)
	require.NoError(t, err)
	assert.Contains(t, sender.body, "Dear Bob Brown")
	assert.Contains(t, sender.body, "91%")
}

func TestSendInvitation_SenderFailurePropagates(t *testing.T) {
	sender := &fakeSender{err: fmt.Errorf("connection refused")}
	d := NewDispatcher(nil, sender)

	err := d.SendInvitation(context.Background(), "x@example.com", "X", "Role", 70)
	assert.Error(t, err)
}

func TestSMTPSender_RequiresCredentials(t *testing.T) {
	s := NewSMTPSender("", 0, "", "")
	err := s.Send("a@example.com", "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials")
}
