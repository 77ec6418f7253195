package llm

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/types"
)

// ErrEmptyPrompt is returned when a suggestion is requested without a prompt
var ErrEmptyPrompt = errors.New("prompt is required")

// BuildSuggestionPrompt returns the model prompt for a suggestion request
func BuildSuggestionPrompt(req *types.SuggestRequest) string {
	role := strings.TrimSpace(req.Prompt)
	switch req.Type {
	case types.SuggestSummary:
		profile := prompts.MustGet(prompts.SuggestFile, "summary-no-linkedin")
		if req.LinkedIn != "" {
			profile = prompts.Format(prompts.MustGet(prompts.SuggestFile, "summary-linkedin-context"),
				map[string]string{"LinkedIn": req.LinkedIn})
		}
		return prompts.Format(prompts.MustGet(prompts.SuggestFile, "summary"),
			map[string]string{"Role": strconv.Quote(role), "Context": profile})
	case types.SuggestExperience:
		return prompts.Format(prompts.MustGet(prompts.SuggestFile, "experience"),
			map[string]string{"Role": strconv.Quote(role)})
	default:
		return prompts.Format(prompts.MustGet(prompts.SuggestFile, "generic"),
			map[string]string{"Topic": role})
	}
}

// CleanSuggestion strips markdown bold markers and surrounding whitespace
func CleanSuggestion(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "**", ""))
}

// Suggest asks the model for replacement text for a single field. The result
// is plain text; callers escape it like any other field.
func Suggest(ctx context.Context, client Client, req *types.SuggestRequest) (string, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return "", ErrEmptyPrompt
	}
	text, err := client.GenerateContent(ctx, BuildSuggestionPrompt(req), TierStandard)
	if err != nil {
		return "", err
	}
	return CleanSuggestion(text), nil
}
