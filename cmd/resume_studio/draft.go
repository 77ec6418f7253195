package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/draft"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/provider"
)

var (
	draftSaveFlags inputFlags
	draftLoadOut   string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage local resume drafts",
	Long:  "Drafts are named resumes kept in a local SQLite file so editing works without the server.",
}

var draftSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save a resume as a named draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftSave,
}

var draftLoadCmd = &cobra.Command{
	Use:   "load NAME",
	Short: "Print a draft as resume JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftLoad,
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved drafts",
	Args:  cobra.NoArgs,
	RunE:  runDraftList,
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftDelete,
}

func init() {
	draftSaveCmd.Flags().StringVarP(&draftSaveFlags.resume, "resume", "r", "", "Path to resume JSON file")
	_ = draftSaveCmd.MarkFlagRequired("resume")
	draftLoadCmd.Flags().StringVarP(&draftLoadOut, "out", "o", "-", "Output path (- for stdout)")

	draftCmd.AddCommand(draftSaveCmd, draftLoadCmd, draftListCmd, draftDeleteCmd)
	rootCmd.AddCommand(draftCmd)
}

func openDrafts() (*draft.Store, error) {
	cfg, err := resolveConfig(nil)
	if err != nil {
		return nil, err
	}
	return draft.Open(cfg.DraftPath)
}

func runDraftSave(cmd *cobra.Command, args []string) error {
	model, err := provider.FileProvider{Strict: true}.Load(cmd.Context(), draftSaveFlags.resume)
	if errors.Is(err, provider.ErrNoData) {
		return fmt.Errorf("resume file not found: %s", draftSaveFlags.resume)
	}
	if err != nil {
		return err
	}

	store, err := openDrafts()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), args[0], model); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved draft %q\n", args[0])
	return nil
}

func runDraftLoad(cmd *cobra.Command, args []string) error {
	store, err := openDrafts()
	if err != nil {
		return err
	}
	defer store.Close()

	model, err := store.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return writeOutput(cmd, draftLoadOut, []byte(model.Serialize()+"\n"))
}

func runDraftList(cmd *cobra.Command, _ []string) error {
	store, err := openDrafts()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintDrafts(entries)
	return nil
}

func runDraftDelete(cmd *cobra.Command, args []string) error {
	store, err := openDrafts()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted draft %q\n", args[0])
	return nil
}
