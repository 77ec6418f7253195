package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleResume = `{
	"personalInfo": {
		"fullName": "Jane Doe",
		"jobTitle": "Platform Engineer",
		"email": "jane@example.com",
		"phone": "+1 555 0100",
		"summary": "Builds reliable distributed systems and developer tooling.",
		"website": "https://jane.dev"
	},
	"experience": [{"title": "Lead Engineer", "company": "Acme", "startDate": "2020", "endDate": "Present", "description": "Led the platform team\nDesigned the deploy pipeline"}],
	"education": [{"school": "MIT", "degree": "BSc Computer Science", "startDate": "2012", "endDate": "2016"}],
	"skills": "Go, PostgreSQL, Kubernetes",
	"projects": [{"name": "Ledger", "technologies": "Go", "link": "github.com/jane/ledger", "description": "Double-entry bookkeeping"}]
}`

// resetFlags restores every flag to its default so commands do not leak state between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command in process and returns everything written to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
