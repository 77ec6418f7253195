package deploy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGitHub struct {
	mu         sync.Mutex
	repoExists bool
	fileSHA    string
	failPages  bool
	created    map[string]any
	put        map[string]any
	calls      []string
}

func (f *fakeGitHub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"login": "octocat"})
	})
	mux.HandleFunc("GET /repos/octocat/my-portfolio", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if !f.repoExists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("POST /user/repos", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		f.mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&f.created)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /repos/octocat/my-portfolio/contents/index.html", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.fileSHA == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"sha": f.fileSHA})
	})
	mux.HandleFunc("PUT /repos/octocat/my-portfolio/contents/index.html", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		f.mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&f.put)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /repos/octocat/my-portfolio/pages", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.failPages {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

func (f *fakeGitHub) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
}

func newTestPublisher(t *testing.T, fake *fakeGitHub, token string) *GitHubPages {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	g := NewGitHubPages(token, nil)
	g.BaseURL = srv.URL
	g.HTTPClient = srv.Client()
	g.InitDelay = 0
	return g
}

func TestGitHubPages_CreatesRepoOnFirstDeploy(t *testing.T) {
	fake := &fakeGitHub{}
	g := newTestPublisher(t, fake, "good-token")

	result, err := g.Publish(context.Background(), Site{HTML: "<h1>Hi</h1>", OwnerName: "Jane Doe"})
	require.NoError(t, err)

	assert.Equal(t, "https://octocat.github.io/my-portfolio", result.URL)
	assert.Equal(t, "https://github.com/octocat/my-portfolio", result.RepoURL)
	assert.Equal(t, "octocat", result.Username)

	assert.Equal(t, "Portfolio of Jane Doe", fake.created["description"])
	assert.Equal(t, "https://octocat.github.io/my-portfolio", fake.created["homepage"])
	assert.Equal(t, true, fake.created["auto_init"])

	assert.Equal(t, "Initial portfolio deployment", fake.put["message"])
	assert.NotContains(t, fake.put, "sha")
	decoded, err := base64.StdEncoding.DecodeString(fake.put["content"].(string))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>", string(decoded))
	assert.Contains(t, fake.calls, "POST /repos/octocat/my-portfolio/pages")
}

func TestGitHubPages_UpdatesExistingFile(t *testing.T) {
	fake := &fakeGitHub{repoExists: true, fileSHA: "abc123", failPages: true}
	g := newTestPublisher(t, fake, "good-token")

	_, err := g.Publish(context.Background(), Site{HTML: "<p>v2</p>"})
	require.NoError(t, err)

	assert.Nil(t, fake.created)
	assert.Equal(t, "Update portfolio", fake.put["message"])
	assert.Equal(t, "abc123", fake.put["sha"])
}

func TestGitHubPages_InvalidToken(t *testing.T) {
	fake := &fakeGitHub{}
	g := newTestPublisher(t, fake, "bad-token")

	_, err := g.Publish(context.Background(), Site{HTML: "x"})
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Error(), "Invalid GitHub token")
	assert.Equal(t, []string{"GET /user"}, fake.calls)
}

func TestGitHubPages_MissingToken(t *testing.T) {
	_, err := NewGitHubPages("", nil).Publish(context.Background(), Site{})
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestGitHubPages_PushFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"login":"octocat"}`))
	})
	mux.HandleFunc("GET /repos/octocat/my-portfolio", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("PUT /repos/octocat/my-portfolio/contents/index.html", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"sha mismatch"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewGitHubPages("t", nil)
	g.BaseURL = srv.URL

	_, err := g.Publish(context.Background(), Site{HTML: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "failed to push file: sha mismatch", apiErr.Error())
}

func TestGitHubPages_CreateRepoFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"login":"octocat"}`))
	})
	mux.HandleFunc("GET /repos/octocat/my-portfolio", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /user/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"name already exists on this account"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewGitHubPages("t", nil)
	g.BaseURL = srv.URL + "/"

	_, err := g.Publish(context.Background(), Site{HTML: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "create repo", apiErr.Operation)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
}

func TestGitHubPages_UnreachableAPIIsNotAuthError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	g := NewGitHubPages("t", nil)
	g.BaseURL = base

	_, err := g.Publish(context.Background(), Site{HTML: "x"})
	require.Error(t, err)
	var authErr *AuthError
	assert.False(t, errors.As(err, &authErr))
}
