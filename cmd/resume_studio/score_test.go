package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestScoreCommand_Box(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.json", sampleResume)

	out, err := executeCommand(t, "score", "--resume", resume)
	require.NoError(t, err)
	assert.Contains(t, out, "ATS SCORE")
	assert.Contains(t, out, "Score: ")
	assert.Contains(t, out, "✓ Contact information is complete.")
}

func TestScoreCommand_JSONWithJob(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.json", sampleResume)
	job := writeFile(t, dir, "job.txt", "We need a platform engineer who knows Kubernetes and PostgreSQL for reliable distributed systems.")

	out, err := executeCommand(t, "score", "--resume", resume, "--job", job, "--json")
	require.NoError(t, err)

	var result types.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Checks, 6)
	assert.Contains(t, result.Checks[5].Message, "Matched")
	assert.Greater(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}

func TestScoreCommand_MissingJobFile(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.json", sampleResume)

	_, err := executeCommand(t, "score", "--resume", resume, "--job", dir+"/missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestScoreCommand_JobURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><nav>Jobs</nav><div class="job-description"><p>Kubernetes PostgreSQL platform distributed reliable systems engineer pipeline</p></div></body></html>`))
	}))
	defer srv.Close()
	resume := writeFile(t, t.TempDir(), "resume.json", sampleResume)

	out, err := executeCommand(t, "score", "--resume", resume, "--job", srv.URL+"/postings/42", "--json")
	require.NoError(t, err)

	var result types.ScoreResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Checks[5].Passed, result.Checks[5].Message)
}

func TestCompletenessCommand(t *testing.T) {
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.json", sampleResume)

	out, err := executeCommand(t, "completeness", "--resume", resume)
	require.NoError(t, err)
	assert.Contains(t, out, "PROFILE COMPLETENESS")
	assert.Contains(t, out, "90% (Excellent)")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.json", sampleResume)
	invalid := writeFile(t, dir, "invalid.json", `{"experience": "not a list", "skills": 7}`)

	out, err := executeCommand(t, "validate", "--resume", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "VALID RESUME")

	out, err = executeCommand(t, "validate", "--resume", invalid)
	require.Error(t, err)
	assert.Contains(t, out, "SCHEMA PROBLEMS")
	assert.Contains(t, out, "experience")
}
