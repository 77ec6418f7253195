package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/deploy"
)

// githubStub serves the GitHub endpoints used by a deploy to an existing repository
func githubStub(t *testing.T, pushed *string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"login": "janedoe"})
	})
	mux.HandleFunc("GET /repos/janedoe/portfolio", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("GET /repos/janedoe/portfolio/contents/index.html", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("PUT /repos/janedoe/portfolio/contents/index.html", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Content string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		decoded, _ := base64.StdEncoding.DecodeString(body.Content)
		*pushed = string(decoded)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /repos/janedoe/portfolio/pages", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestDeployCommand_GitHub(t *testing.T) {
	var pushed string
	srv := githubStub(t, &pushed)
	dir := t.TempDir()
	resume := writeFile(t, dir, "resume.json", sampleResume)

	out, err := executeCommand(t, "deploy", "--resume", resume, "--template", "developer",
		"--github-token", "good-token", "--github-api", srv.URL, "--repo", "portfolio")
	require.NoError(t, err)
	assert.Contains(t, out, "Published: https://janedoe.github.io/portfolio")
	assert.Contains(t, out, "Repository: https://github.com/janedoe/portfolio")
	assert.Contains(t, pushed, `data-template="developer"`)
}

func TestDeployCommand_GitHubBadToken(t *testing.T) {
	var pushed string
	srv := githubStub(t, &pushed)
	resume := writeFile(t, t.TempDir(), "resume.json", sampleResume)

	_, err := executeCommand(t, "deploy", "--resume", resume,
		"--github-token", "expired", "--github-api", srv.URL, "--repo", "portfolio")
	var authErr *deploy.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Empty(t, pushed)
}

func TestDeployCommand_GitHubTokenRequired(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	resume := writeFile(t, t.TempDir(), "resume.json", sampleResume)

	_, err := executeCommand(t, "deploy", "--resume", resume)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GitHub token is required")
}

func TestDeployCommand_RequiresName(t *testing.T) {
	resume := writeFile(t, t.TempDir(), "resume.json", `{"personalInfo": {"email": "a@b.com"}}`)

	_, err := executeCommand(t, "deploy", "--resume", resume, "--github-token", "good-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full name")
}

type recordingPutter struct {
	key  string
	body string
}

func (r *recordingPutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	r.key = *in.Key
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	r.body = string(data)
	return &s3.PutObjectOutput{}, nil
}

func TestDeployCommand_S3(t *testing.T) {
	t.Setenv("S3_BUCKET", "portfolios")
	t.Setenv("S3_PREFIX", "jane")
	t.Setenv("S3_PUBLIC_BASE_URL", "https://cdn.example.com/")
	putter := &recordingPutter{}
	original := newS3Putter
	newS3Putter = func(context.Context, deploy.S3Config) (deploy.ObjectPutter, error) { return putter, nil }
	t.Cleanup(func() { newS3Putter = original })

	resume := writeFile(t, t.TempDir(), "resume.json", sampleResume)
	out, err := executeCommand(t, "deploy", "--resume", resume, "--target", "s3")
	require.NoError(t, err)
	assert.Contains(t, out, "Published: https://cdn.example.com/jane/index.html")
	assert.Equal(t, "jane/index.html", putter.key)
	assert.Contains(t, putter.body, "Jane Doe")
}

func TestDeployCommand_S3NotConfigured(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	resume := writeFile(t, t.TempDir(), "resume.json", sampleResume)

	_, err := executeCommand(t, "deploy", "--resume", resume, "--target", "s3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3 bucket is required")
}

func TestDeployCommand_UnknownTarget(t *testing.T) {
	resume := writeFile(t, t.TempDir(), "resume.json", sampleResume)

	_, err := executeCommand(t, "deploy", "--resume", resume, "--target", "ftp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown deploy target")
}
