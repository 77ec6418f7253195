package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/draft"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/provider"
	"github.com/jonathan/resume-studio/internal/types"
)

// inputFlags are the resume source flags shared by every command that reads a resume
type inputFlags struct {
	resume   string
	draft    string
	userID   string
	template string
	out      string
}

func addInputFlags(cmd *cobra.Command, f *inputFlags) {
	cmd.Flags().StringVarP(&f.resume, "resume", "r", "", "Path to resume JSON file")
	cmd.Flags().StringVarP(&f.draft, "draft", "d", "", "Local draft name, used when --resume is absent")
	cmd.Flags().StringVar(&f.userID, "user-id", "", "Load the stored resume of this user from DATABASE_URL")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Template id")
}

func addOutFlag(cmd *cobra.Command, f *inputFlags, defaultOut string) {
	cmd.Flags().StringVarP(&f.out, "out", "o", defaultOut, "Output path (- for stdout)")
}

// resolveConfig layers flag values over the --config file over the built-in defaults.
func resolveConfig(f *inputFlags) (*config.Config, error) {
	fileCfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		fileCfg = loaded
	}

	flagCfg := &config.Config{DraftPath: draftDBPath, Verbose: verbose}
	if f != nil {
		flagCfg.Resume = f.resume
		flagCfg.Draft = f.draft
	}
	cfg := flagCfg.MergeWithDefaults(*fileCfg)
	if cfg.DraftPath == "" {
		cfg.DraftPath = os.Getenv("DRAFT_PATH")
	}
	if cfg.DraftPath == "" {
		cfg.DraftPath = draft.DefaultPath()
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// pick returns the flag value when set, else the configured one
func pick(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg == nil || !cfg.Verbose {
		return zap.NewNop()
	}
	return observability.NewLogger("debug", "console")
}

// loadResume resolves the resume through the file, the local draft and the
// database, in that order. The returned cleanup closes whatever was opened.
func loadResume(ctx context.Context, cfg *config.Config, userID string, logger *zap.Logger) (*types.ResumeModel, func(), error) {
	var (
		providers []provider.Provider
		closers   []func()
	)
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}

	if cfg.Resume != "" {
		providers = append(providers, provider.Bound{Provider: provider.FileProvider{}, Key: cfg.Resume})
	}
	if cfg.Draft != "" {
		store, err := draft.Open(cfg.DraftPath)
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() { _ = store.Close() })
		providers = append(providers, provider.Bound{Provider: provider.DraftProvider{Store: store}, Key: cfg.Draft})
	}
	if userID != "" {
		if cfg.DatabaseURL == "" {
			return nil, cleanup, fmt.Errorf("--user-id requires DATABASE_URL")
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("database unavailable", zap.Error(err))
		} else {
			closers = append(closers, database.Close)
			providers = append(providers, provider.Bound{Provider: provider.DBProvider{Store: database}, Key: userID})
		}
	}
	if len(providers) == 0 {
		return nil, cleanup, fmt.Errorf("no resume source: pass --resume, --draft or --user-id")
	}

	chain := provider.Chain{Providers: providers, Logger: logger}
	m, err := chain.Load(ctx, "")
	if errors.Is(err, provider.ErrNoData) {
		return nil, cleanup, fmt.Errorf("no resume found in the given sources")
	}
	if err != nil {
		return nil, cleanup, err
	}
	logger.Debug("resume loaded", zap.String("name", m.DisplayName()))
	return m, cleanup, nil
}

// writeOutput writes data to path, or to the command's stdout when path is "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
