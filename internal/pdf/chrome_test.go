package pdf

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChromeRenderer_Defaults(t *testing.T) {
	t.Setenv("CHROME_PATH", "/opt/chrome/chrome")
	r := NewChromeRenderer(nil)
	assert.Equal(t, "/opt/chrome/chrome", r.ExecPath)
	assert.Equal(t, DefaultTimeout, r.Timeout)
	assert.NotNil(t, r.Logger)
}

func TestAllocatorOptions_ExecPath(t *testing.T) {
	base := (&ChromeRenderer{}).allocatorOptions()
	withPath := (&ChromeRenderer{ExecPath: "/usr/bin/chromium"}).allocatorOptions()
	assert.Len(t, withPath, len(base)+1)
}

func TestRenderHTMLToPDF_Empty(t *testing.T) {
	_, err := NewChromeRenderer(nil).RenderHTMLToPDF(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func findChrome() string {
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

func TestRenderHTMLToPDF_Chrome(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	chrome := findChrome()
	if chrome == "" {
		t.Skip("Chrome not available")
	}

	r := &ChromeRenderer{ExecPath: chrome, Timeout: 30 * time.Second}
	out, err := r.RenderHTMLToPDF(context.Background(), "<!DOCTYPE html><html><body><h1>Jane Doe</h1></body></html>")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
