// Package jobpost loads a job description for keyword scoring, either from a
// local text file or by fetching a job board page and extracting its text.
package jobpost

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeStudio/1.0)"

// maxPageBytes caps how much of a job page is read
const maxPageBytes = 5 << 20

// Error represents an error while loading a job description.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job description %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("job description %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Loader reads job descriptions from files and URLs
type Loader struct {
	HTTPClient *http.Client
	UserAgent  string
	Logger     *zap.Logger
}

// NewLoader returns a Loader with default timeout and user agent
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  DefaultUserAgent,
		Logger:     logger,
	}
}

// IsURL reports whether source is an http(s) URL rather than a file path
func IsURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Load returns the cleaned job description text from a file path or URL
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	if IsURL(source) {
		return l.Fetch(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", &Error{Source: source, Message: "failed to read file", Cause: err}
	}
	return CleanText(string(data)), nil
}

// Fetch downloads a job page and extracts the posting text
func (l *Loader) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &Error{Source: pageURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", l.UserAgent)
	req.Header.Set("Accept", "text/html,text/plain")

	client := l.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{Source: pageURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Source: pageURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", &Error{Source: pageURL, Message: "failed to read response body", Cause: err}
	}

	var text string
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain") {
		text = CleanText(string(body))
	} else {
		text, err = ExtractPostingText(string(body))
		if err != nil {
			return "", &Error{Source: pageURL, Message: "failed to parse page", Cause: err}
		}
	}

	if l.Logger != nil {
		l.Logger.Debug("job description fetched",
			zap.String("url", pageURL),
			zap.Int("bytes", len(body)),
			zap.Int("text_length", len(text)))
	}
	return text, nil
}

// postingSelectors are tried in order; the first match is the posting body
var postingSelectors = []string{
	".job-description",
	"#job-description",
	".job-details",
	".posting-content",
	"[data-testid='job-description']",
	"main",
	"article",
	"#content",
}

// ExtractPostingText strips page chrome and returns the text of the posting body,
// or of the whole page body when no posting container is found.
func ExtractPostingText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner").Remove()

	content := doc.Find("body")
	for _, selector := range postingSelectors {
		if s := doc.Find(selector); s.Length() > 0 {
			content = s.First()
			break
		}
	}

	// block elements become line breaks so words from adjacent items stay apart
	content.Find("p, li, div, h1, h2, h3, h4, br").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	return CleanText(content.Text()), nil
}
