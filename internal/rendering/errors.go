// Package rendering turns a resume into markup: the interactive portfolio tree,
// the static portfolio document, and the printable resume document.
package rendering

import (
	"fmt"
	"strings"
)

// TemplateError represents a failure building the node tree for a template
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error [%s]: %s: %v", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error [%s]: %s", e.Template, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// ParityMismatch is one fact that differs between the interactive and static output
type ParityMismatch struct {
	Field       string
	Interactive string
	Static      string
}

// ParityError lists every fact on which the two portfolio renderings disagree
type ParityError struct {
	Template   string
	Mismatches []ParityMismatch
}

func (e *ParityError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("parity check failed for template %s:\n", e.Template))
	for i, m := range e.Mismatches {
		sb.WriteString(fmt.Sprintf("  %d. %s: interactive=%q static=%q\n", i+1, m.Field, m.Interactive, m.Static))
	}
	return sb.String()
}
