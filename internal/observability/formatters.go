// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs the extracted job description keywords.
func (p *Printer) PrintKeywords(jobRole string, keywords []string) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	if jobRole != "" {
		sb.WriteString(fmt.Sprintf("Role: %s\n\n", jobRole))
	}
	for i, kw := range keywords {
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, kw))
	}

	p.printBox("JOB KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutcomes outputs one line per screened resume with score and verdict.
func (p *Printer) PrintOutcomes(outcomes []types.ScreeningOutcome) {
	if len(outcomes) == 0 {
		return
	}

	shortlisted := 0
	var sb strings.Builder
	for _, o := range outcomes {
		verdict := "rejected"
		if o.Shortlisted {
			verdict = "shortlisted"
			shortlisted++
		}
		if o.Note != "" {
			verdict = o.Note
		}
		sb.WriteString(fmt.Sprintf("%-24s %3d  %s\n", truncate(o.Name, 24), o.Score, verdict))
	}
	sb.WriteString(fmt.Sprintf("\nShortlisted %d of %d", shortlisted, len(outcomes)))

	p.printBox("SCREENING RESULTS", sb.String())
}

// PrintSearchResults outputs ranked candidate matches for a search prompt.
func (p *Printer) PrintSearchResults(results []types.SearchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.Name))
		sb.WriteString(fmt.Sprintf("    Email: %s\n", r.Email))
		sb.WriteString(fmt.Sprintf("    Tech:  %s\n", truncate(r.TechStack, 40)))
		sb.WriteString(fmt.Sprintf("    %s\n", truncate(r.SkillsExperience, boxWidth-8)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(results)-maxItemsToShow))
	}

	p.printBox("CANDIDATE MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
