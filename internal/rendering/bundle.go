package rendering

import (
	"context"
	"fmt"
	"sync"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/types"
)

// RenderAll renders the resume in every portfolio theme concurrently, keyed by template id.
func (r *Static) RenderAll(ctx context.Context, m *types.ResumeModel) (map[string]string, error) {
	if m == nil {
		return nil, &RenderError{Message: "resume is nil"}
	}
	// one snapshot so every page shows the same year
	fixed := &Static{Clock: FixedClock(r.Clock.Now())}

	g, gCtx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	pages := make(map[string]string, len(portfolioThemes))

	for _, id := range PortfolioTemplateIDs() {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			html, err := fixed.Render(m, id)
			if err != nil {
				return fmt.Errorf("render %s: %w", id, err)
			}
			mu.Lock()
			pages[id] = html
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

// MarkdownExport renders the resume as a document template and converts it to Markdown.
func MarkdownExport(m *types.ResumeModel, templateID string) (string, error) {
	html, err := Document{}.Render(m, templateID)
	if err != nil {
		return "", err
	}
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", &RenderError{Message: "failed to convert document to markdown", Cause: err}
	}
	return md, nil
}
