// Package main provides the resume_studio CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	verbose     bool
	draftDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Resume editor, portfolio renderer and publisher",
	Long: "resume_studio renders a resume as an interactive or static portfolio, a printable document, " +
		"Markdown or PDF, scores it for ATS readiness, keeps local drafts and publishes to GitHub Pages or S3.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&draftDBPath, "draft-db", "", "SQLite draft database (default ~/.resume_studio/drafts.db)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
