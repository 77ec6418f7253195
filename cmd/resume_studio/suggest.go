package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	suggestType     string
	suggestPrompt   string
	suggestLinkedIn string
)

// newLLMClient is replaced in tests
var newLLMClient = func(ctx context.Context, apiKey string) (llm.Client, error) {
	return llm.NewClient(ctx, llm.ConfigFromEnv(), apiKey)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask Gemini for a summary or experience suggestion",
	Long:  "Generates replacement text for a single resume field. Requires GEMINI_API_KEY or api_key in the config file.",
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestType, "type", string(types.SuggestGeneric), "Suggestion type: summary, experience or generic")
	suggestCmd.Flags().StringVarP(&suggestPrompt, "prompt", "p", "", "Role, title or context to write about")
	suggestCmd.Flags().StringVar(&suggestLinkedIn, "linkedin", "", "LinkedIn profile URL for summary suggestions")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(nil)
	if err != nil {
		return err
	}

	req := &types.SuggestRequest{
		Type:     types.SuggestionType(suggestType),
		Prompt:   suggestPrompt,
		LinkedIn: suggestLinkedIn,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid suggestion request: %w", err)
	}

	apiKey := pick(cfg.APIKey, llm.APIKeyFromEnv())
	if apiKey == "" {
		return llm.ErrNoAPIKey
	}
	client, err := newLLMClient(cmd.Context(), apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	text, err := llm.Suggest(cmd.Context(), client, req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
