// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio-studio/internal/synthesis"
	"github.com/jonathan/portfolio-studio/internal/types"
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

// PrintProfileSummary outputs a human-readable summary of a stored profile.
func (p *Printer) PrintProfileSummary(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Title:  %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.Email))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s", entry.Position, entry.Company))
			if entry.Duration != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.Duration))
			}
			sb.WriteString("\n")
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, entry := range profile.Education {
			sb.WriteString(fmt.Sprintf("  • %s — %s", entry.Degree, entry.Institution))
			if entry.Year != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.Year))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("PROFILE", strings.TrimRight(sb.String(), "\n"))
}

// PrintCompletionReport outputs whether the profile can go live and which
// sections still need content.
func (p *Printer) PrintCompletionReport(profile *types.Profile) {
	state := synthesis.Completion(profile)

	var sb strings.Builder
	if state.Complete {
		sb.WriteString("Status: ready to publish\n")
	} else {
		sb.WriteString("Status: incomplete\n\n")
		sb.WriteString("Missing sections:\n")
		for _, section := range state.MissingSections {
			sb.WriteString(fmt.Sprintf("  • %s\n", section))
		}
	}

	p.printBox("COMPLETION", strings.TrimRight(sb.String(), "\n"))
}
