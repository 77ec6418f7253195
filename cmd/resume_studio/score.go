package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/jobpost"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/scoring"
)

var (
	scoreFlags        inputFlags
	scoreJobFile      string
	scoreJSON         bool
	completenessFlags inputFlags
	validateFlags     inputFlags
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume for ATS readiness",
	Long:  "Rates the resume out of 100 with one check per rule. A job description file or posting URL adds keyword matching.",
	RunE:  runScore,
}

var completenessCmd = &cobra.Command{
	Use:   "completeness",
	Short: "Report how much of the profile is filled in",
	RunE:  runCompleteness,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a resume document against the resume schema",
	RunE:  runValidate,
}

func init() {
	addInputFlags(scoreCmd, &scoreFlags)
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Job description text file or posting URL")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the result as JSON")

	addInputFlags(completenessCmd, &completenessFlags)
	addInputFlags(validateCmd, &validateFlags)

	rootCmd.AddCommand(scoreCmd, completenessCmd, validateCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&scoreFlags)
	if err != nil {
		return err
	}
	model, cleanup, err := loadResume(cmd.Context(), cfg, scoreFlags.userID, newLogger(cfg))
	defer cleanup()
	if err != nil {
		return err
	}

	var jobDescription string
	if source := pick(scoreJobFile, cfg.Job); source != "" {
		jobDescription, err = jobpost.NewLoader(newLogger(cfg)).Load(cmd.Context(), source)
		if err != nil {
			return err
		}
	}

	result := scoring.Score(model, jobDescription)
	if scoreJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintScore(&result)
	return nil
}

func runCompleteness(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&completenessFlags)
	if err != nil {
		return err
	}
	model, cleanup, err := loadResume(cmd.Context(), cfg, completenessFlags.userID, newLogger(cfg))
	defer cleanup()
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintCompleteness(scoring.ProfileCompleteness(model))
	return nil
}

// runValidate checks the raw file when one is given; other sources hold
// already-decoded models and are checked in their canonical form.
func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&validateFlags)
	if err != nil {
		return err
	}

	var data []byte
	if cfg.Resume != "" {
		data, err = os.ReadFile(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
	} else {
		model, cleanup, err := loadResume(cmd.Context(), cfg, validateFlags.userID, newLogger(cfg))
		defer cleanup()
		if err != nil {
			return err
		}
		data = []byte(model.Serialize())
	}

	validationErr := schemas.ValidateResume(data)
	observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(validationErr)
	if validationErr != nil {
		return fmt.Errorf("resume is not valid")
	}
	return nil
}
