package deploy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

const (
	// DefaultGitHubAPI is the public GitHub REST endpoint
	DefaultGitHubAPI = "https://api.github.com"
	// DefaultRepoName is the repository the portfolio is pushed to
	DefaultRepoName = "my-portfolio"
)

// GitHubPages publishes to a GitHub Pages repository owned by the token's user.
type GitHubPages struct {
	Token      string
	BaseURL    string
	RepoName   string
	HTTPClient *http.Client
	// InitDelay waits for a freshly created repo to initialize its main branch
	InitDelay time.Duration
	Logger    *zap.Logger
}

// NewGitHubPages returns a publisher for the given personal access token
func NewGitHubPages(token string, logger *zap.Logger) *GitHubPages {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitHubPages{
		Token:      token,
		BaseURL:    DefaultGitHubAPI,
		RepoName:   DefaultRepoName,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		InitDelay:  2 * time.Second,
		Logger:     logger,
	}
}

// client builds an authenticated go-github client against BaseURL
func (g *GitHubPages) client() (*github.Client, error) {
	httpClient := g.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	client := github.NewClient(httpClient).WithAuthToken(g.Token)

	base := g.BaseURL
	if base == "" {
		base = DefaultGitHubAPI
	}
	u, err := url.Parse(strings.TrimRight(base, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", base, err)
	}
	client.BaseURL = u
	return client, nil
}

// Publish verifies the token, ensures the repo, pushes index.html and enables Pages.
func (g *GitHubPages) Publish(ctx context.Context, site Site) (*Result, error) {
	if g.Token == "" {
		return nil, &AuthError{Message: "GitHub token is required"}
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	client, err := g.client()
	if err != nil {
		return nil, err
	}

	username, err := verifyToken(ctx, client)
	if err != nil {
		return nil, err
	}
	repo := g.RepoName
	if repo == "" {
		repo = DefaultRepoName
	}
	pagesURL := fmt.Sprintf("https://%s.github.io/%s", username, repo)

	if err := g.ensureRepo(ctx, client, username, repo, site.OwnerName, pagesURL); err != nil {
		return nil, err
	}

	sha, err := fileSHA(ctx, client, username, repo)
	if err != nil {
		return nil, err
	}
	if err := putIndex(ctx, client, username, repo, site.HTML, sha); err != nil {
		return nil, err
	}

	if err := enablePages(ctx, client, username, repo); err != nil {
		logger.Debug("enable pages failed", zap.String("repo", repo), zap.Error(err))
	}

	logger.Info("portfolio published",
		zap.String("username", username),
		zap.String("repo", repo),
		zap.Bool("updated", sha != ""))

	return &Result{
		URL:      pagesURL,
		RepoURL:  fmt.Sprintf("https://github.com/%s/%s", username, repo),
		Username: username,
	}, nil
}

func verifyToken(ctx context.Context, client *github.Client) (string, error) {
	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		if statusOf(err) != 0 {
			return "", &AuthError{Message: "Invalid GitHub token. Please reconnect."}
		}
		return "", fmt.Errorf("failed to call GitHub user endpoint: %w", err)
	}
	if user.GetLogin() == "" {
		return "", &AuthError{Message: "GitHub user has no login"}
	}
	return user.GetLogin(), nil
}

func (g *GitHubPages) ensureRepo(ctx context.Context, client *github.Client, username, repo, ownerName, homepage string) error {
	_, _, err := client.Repositories.Get(ctx, username, repo)
	if err == nil {
		return nil
	}
	if statusOf(err) == 0 {
		return fmt.Errorf("failed to look up repo %s: %w", repo, err)
	}

	if ownerName == "" {
		ownerName = username
	}
	_, _, err = client.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.String(repo),
		Description: github.String("Portfolio of " + ownerName),
		Homepage:    github.String(homepage),
		Private:     github.Bool(false),
		AutoInit:    github.Bool(true),
	})
	if err != nil {
		return apiError("create repo", err)
	}

	if g.InitDelay > 0 {
		select {
		case <-time.After(g.InitDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// fileSHA returns the blob sha of the current index.html, or "" when there is none
func fileSHA(ctx context.Context, client *github.Client, username, repo string) (string, error) {
	file, _, _, err := client.Repositories.GetContents(ctx, username, repo, IndexFile, nil)
	if err != nil {
		if statusOf(err) != 0 {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", IndexFile, err)
	}
	return file.GetSHA(), nil
}

func putIndex(ctx context.Context, client *github.Client, username, repo, html, sha string) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String("Initial portfolio deployment"),
		Content: []byte(html),
	}
	var err error
	if sha == "" {
		_, _, err = client.Repositories.CreateFile(ctx, username, repo, IndexFile, opts)
	} else {
		opts.Message = github.String("Update portfolio")
		opts.SHA = github.String(sha)
		_, _, err = client.Repositories.UpdateFile(ctx, username, repo, IndexFile, opts)
	}
	if err != nil {
		return apiError("push file", err)
	}
	return nil
}

func enablePages(ctx context.Context, client *github.Client, username, repo string) error {
	_, _, err := client.Repositories.EnablePages(ctx, username, repo, &github.Pages{
		Source: &github.PagesSource{Branch: github.String("main"), Path: github.String("/")},
	})
	if err != nil && statusOf(err) != http.StatusConflict {
		return apiError("enable pages", err)
	}
	return nil
}

// statusOf returns the HTTP status of a GitHub error response, or 0 when the
// request never got one.
func statusOf(err error) int {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}

func apiError(op string, err error) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return &APIError{Operation: op, StatusCode: errResp.Response.StatusCode, Message: errResp.Message}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
