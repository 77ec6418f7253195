package types

import (
	"time"

	"github.com/google/uuid"
)

// StoredResume is a persisted resume snapshot keyed by its owner.
type StoredResume struct {
	UserID    uuid.UUID   `json:"user_id"`
	Title     string      `json:"title"`
	Content   ResumeModel `json:"content"`
	Views     int         `json:"views"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ScoreRequest asks for an ATS score, optionally against a job description.
type ScoreRequest struct {
	Resume         *ResumeModel `json:"resume" validate:"required"`
	JobDescription string       `json:"jobDescription"`
}

// RenderRequest asks for a rendering of a resume with a template.
type RenderRequest struct {
	Resume   *ResumeModel `json:"resume" validate:"required"`
	Template string       `json:"template" validate:"max=32"`
}

// PreviewRequest asks for the interactive rendering at a given navigation state.
type PreviewRequest struct {
	Resume   *ResumeModel `json:"resume" validate:"required"`
	Template string       `json:"template" validate:"max=32"`
	Active   string       `json:"active" validate:"max=32"`
	MenuOpen bool         `json:"menuOpen"`
}

// SuggestionType selects the prompt used for an AI suggestion.
type SuggestionType string

// Suggestion types
const (
	SuggestSummary    SuggestionType = "summary"
	SuggestExperience SuggestionType = "experience"
	SuggestGeneric    SuggestionType = "generic"
)

// SuggestRequest asks for a replacement text for a single field.
type SuggestRequest struct {
	Type     SuggestionType `json:"type" validate:"omitempty,oneof=summary experience generic"`
	Prompt   string         `json:"prompt" validate:"required,max=2000"`
	LinkedIn string         `json:"linkedin" validate:"max=500"`
}

// DeployRequest publishes the static portfolio. Resume falls back to the stored one.
type DeployRequest struct {
	GitHubToken string       `json:"githubToken" validate:"required"`
	Resume      *ResumeModel `json:"resume"`
	Template    string       `json:"template" validate:"max=32"`
}

// ViewsRequest increments the view counter of a public portfolio.
type ViewsRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// Validate validates the request.
func (r *ScoreRequest) Validate() error { return validate.Struct(r) }

// Validate validates the request.
func (r *RenderRequest) Validate() error { return validate.Struct(r) }

// Validate validates the request.
func (r *PreviewRequest) Validate() error { return validate.Struct(r) }

// Validate validates the request.
func (r *SuggestRequest) Validate() error { return validate.Struct(r) }

// Validate validates the request.
func (r *DeployRequest) Validate() error { return validate.Struct(r) }

// Validate validates the request.
func (r *ViewsRequest) Validate() error { return validate.Struct(r) }
