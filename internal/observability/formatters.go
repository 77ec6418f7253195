// Package observability provides structured logging and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/draft"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func truncate(line string, width int) string {
	if utf8.RuneCountInString(line) <= width {
		return line
	}
	runes := []rune(line)
	return string(runes[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		line = truncate(line, inner)
		// pad by rune count so multi-byte marks keep the border aligned
		pad := inner - utf8.RuneCountInString(line)
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", max(0, pad)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func mark(passed bool) string {
	if passed {
		return "✓"
	}
	return "✗"
}

// PrintScore outputs the ATS score and every check.
func (p *Printer) PrintScore(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n\n", result.Score))
	for _, c := range result.Checks {
		sb.WriteString(fmt.Sprintf("%s %s\n", mark(c.Passed), c.Message))
	}

	p.printBox("ATS SCORE", sb.String())
}

// PrintCompleteness outputs the profile completeness.
func (p *Printer) PrintCompleteness(c types.Completeness) {
	p.printBox("PROFILE COMPLETENESS", fmt.Sprintf("%d%% (%s)", c.Percent, c.Label))
}

// PrintDrafts lists stored drafts.
func (p *Printer) PrintDrafts(entries []draft.Entry) {
	if len(entries) == 0 {
		p.printBox("DRAFTS", "No drafts saved")
		return
	}

	var sb strings.Builder
	for i, e := range entries {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(entries)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%-30s %s\n", e.Key, e.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}

	p.printBox(fmt.Sprintf("DRAFTS (%d)", len(entries)), sb.String())
}

// PrintValidation outputs the result of a schema check.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(err error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "VALID RESUME")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	validationErr, ok := err.(*schemas.ValidationError)
	if !ok {
		p.printBox("VALIDATION FAILED", err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(validationErr.Errors)))
	for _, fe := range validationErr.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", fe.Message))
	}

	p.printBox("SCHEMA PROBLEMS", sb.String())
}
