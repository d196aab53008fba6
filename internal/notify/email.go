// Package notify composes and sends interview invitation emails to
// shortlisted candidates.
package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonathan/job-screener/internal/llm"
	"github.com/jonathan/job-screener/internal/prompts"
)

// ContentGenerator produces the email body text.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// Sender delivers a composed message.
type Sender interface {
	Send(to, subject, body string) error
}

// Dispatcher generates invitation emails via the LLM and hands them to a
// Sender. A generation failure degrades to the static template body; the
// invitation is still sent.
type Dispatcher struct {
	gen    ContentGenerator
	sender Sender
}

// NewDispatcher creates a Dispatcher. gen may be nil, in which case the
// static template body is always used.
func NewDispatcher(gen ContentGenerator, sender Sender) *Dispatcher {
	return &Dispatcher{gen: gen, sender: sender}
}

// SendInvitation composes and sends the interview invitation for one
// shortlisted candidate.
func (d *Dispatcher) SendInvitation(ctx context.Context, email, name, jobRole string, score int) error {
	subject := fmt.Sprintf("Interview Invitation for %s Role", jobRole)

	body := d.composeBody(ctx, name, jobRole, score)
	if err := d.sender.Send(email, subject, body); err != nil {
		return fmt.Errorf("failed to send invitation to %s: %w", email, err)
	}
	return nil
}

func (d *Dispatcher) composeBody(ctx context.Context, name, jobRole string, score int) string {
	template := prompts.MustGet("screening.json", "interview-email")
	filled := prompts.Format(template, map[string]string{
		"Name":    name,
		"JobRole": jobRole,
		"Score":   strconv.Itoa(score),
	})

	if d.gen == nil {
		return fallbackBody(filled)
	}
	body, err := d.gen.GenerateContent(ctx, filled, llm.TierLite)
	if err != nil || body == "" {
		return fallbackBody(filled)
	}
	return body
}

// fallbackBody strips the instruction line from the template so the static
// text reads as a finished email.
func fallbackBody(filled string) string {
	if idx := indexAfterFirstBlankLine(filled); idx > 0 {
		return filled[idx:]
	}
	return filled
}

func indexAfterFirstBlankLine(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '\n' && s[i+1] == '\n' {
			return i + 2
		}
	}
	return 0
}
