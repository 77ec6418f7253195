// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default CLI values
const (
	DefaultTemplate         = "classic"
	DefaultDocumentTemplate = "modern"
	DefaultOutputDir        = "site"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Resume           string `json:"resume,omitempty"`            // Path to resume JSON
	Draft            string `json:"draft,omitempty"`             // Local draft key used when no resume file is given
	DraftPath        string `json:"draft_path,omitempty"`        // SQLite draft database
	Template         string `json:"template,omitempty"`          // Portfolio template id
	DocumentTemplate string `json:"document_template,omitempty"` // Document template id
	OutputDir        string `json:"output_dir,omitempty"`        // Export directory
	Job              string `json:"job,omitempty"`               // Job description text file or posting URL

	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that referenced files exist. Template ids are not checked
// since unknown ids fall back to the default template. Resume and Draft may
// both be set; the file is read first and the draft is the fallback.
func (c *Config) Validate() error {
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" && !isURL(c.Job) {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fill := func(dst *string, values ...string) {
		for _, v := range values {
			if *dst != "" {
				return
			}
			*dst = v
		}
	}
	fill(&result.Resume, defaults.Resume)
	fill(&result.Draft, defaults.Draft)
	fill(&result.DraftPath, defaults.DraftPath)
	fill(&result.Template, defaults.Template, DefaultTemplate)
	fill(&result.DocumentTemplate, defaults.DocumentTemplate, DefaultDocumentTemplate)
	fill(&result.OutputDir, defaults.OutputDir, DefaultOutputDir)
	fill(&result.Job, defaults.Job)
	fill(&result.APIKey, defaults.APIKey)
	fill(&result.DatabaseURL, defaults.DatabaseURL)

	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}
