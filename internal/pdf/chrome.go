// Package pdf rasterizes rendered HTML documents to PDF with headless Chrome.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single conversion including browser startup
const DefaultTimeout = 60 * time.Second

// A4 paper size in inches
const (
	PaperWidthInches  = 8.27
	PaperHeightInches = 11.69
)

// ErrEmptyDocument is returned when there is nothing to print
var ErrEmptyDocument = errors.New("html document is empty")

// Renderer converts a complete HTML document to PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeRenderer prints documents through a headless Chrome instance started per call.
type ChromeRenderer struct {
	ExecPath string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// NewChromeRenderer returns a renderer honoring CHROME_PATH
func NewChromeRenderer(logger *zap.Logger) *ChromeRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChromeRenderer{
		ExecPath: os.Getenv("CHROME_PATH"),
		Timeout:  DefaultTimeout,
		Logger:   logger,
	}
}

func (r *ChromeRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}
	return opts
}

// RenderHTMLToPDF writes the document to a temp file, loads it and prints A4 with backgrounds.
func (r *ChromeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	if html == "" {
		return nil, ErrEmptyDocument
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dir, err := os.MkdirTemp("", "resume-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "document.html")
	if err := os.WriteFile(path, []byte(html), 0600); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	started := time.Now()
	var out []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+path),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(PaperWidthInches).
				WithPaperHeight(PaperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			out = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print pdf: %w", err)
	}

	logger.Debug("pdf rendered",
		zap.Int("html_bytes", len(html)),
		zap.Int("pdf_bytes", len(out)),
		zap.Duration("elapsed", time.Since(started)))
	return out, nil
}
