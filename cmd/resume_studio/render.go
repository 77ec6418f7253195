package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/pdf"
	"github.com/jonathan/resume-studio/internal/rendering"
)

var (
	renderFlags    inputFlags
	renderMarkdown bool
	staticFlags    inputFlags
	staticVerify   bool
	exportFlags    inputFlags
	exportDir      string
	pdfFlags       inputFlags
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a printable resume document",
	Long:  "Renders the resume with a document template (modern, professional, minimal) as HTML, or as Markdown with --markdown.",
	RunE:  runRender,
}

var renderStaticCmd = &cobra.Command{
	Use:   "render-static",
	Short: "Render a standalone portfolio page",
	Long:  "Renders a self-contained HTML portfolio page. With --verify the page is checked against the interactive renderer for the same facts and links.",
	RunE:  runRenderStatic,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every portfolio theme and a Markdown resume",
	Long:  "Renders the portfolio in all themes concurrently into --dir, with index.html using the configured template, plus resume.md.",
	RunE:  runExport,
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Render the resume document to PDF with headless Chrome",
	RunE:  runPDF,
}

func init() {
	addInputFlags(renderCmd, &renderFlags)
	addOutFlag(renderCmd, &renderFlags, "-")
	renderCmd.Flags().BoolVar(&renderMarkdown, "markdown", false, "Emit Markdown instead of HTML")

	addInputFlags(renderStaticCmd, &staticFlags)
	addOutFlag(renderStaticCmd, &staticFlags, "index.html")
	renderStaticCmd.Flags().BoolVar(&staticVerify, "verify", false, "Check parity with the interactive renderer")

	addInputFlags(exportCmd, &exportFlags)
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Output directory (default from config, else site)")

	addInputFlags(pdfCmd, &pdfFlags)
	addOutFlag(pdfCmd, &pdfFlags, "resume.pdf")

	rootCmd.AddCommand(renderCmd, renderStaticCmd, exportCmd, pdfCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&renderFlags)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	model, cleanup, err := loadResume(cmd.Context(), cfg, renderFlags.userID, logger)
	defer cleanup()
	if err != nil {
		return err
	}

	templateID := pick(renderFlags.template, cfg.DocumentTemplate)
	var out string
	if renderMarkdown {
		out, err = rendering.MarkdownExport(model, templateID)
	} else {
		out, err = rendering.Document{}.Render(model, templateID)
	}
	if err != nil {
		return err
	}
	return writeOutput(cmd, renderFlags.out, []byte(out))
}

func runRenderStatic(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&staticFlags)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	model, cleanup, err := loadResume(cmd.Context(), cfg, staticFlags.userID, logger)
	defer cleanup()
	if err != nil {
		return err
	}

	templateID := pick(staticFlags.template, cfg.Template)
	if staticVerify {
		if err := rendering.CheckParity(model, templateID); err != nil {
			return err
		}
		logger.Debug("parity verified", zap.String("template", templateID))
	}

	html, err := rendering.NewStatic(rendering.SystemClock{}).Render(model, templateID)
	if err != nil {
		return err
	}
	return writeOutput(cmd, staticFlags.out, []byte(html))
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&exportFlags)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	model, cleanup, err := loadResume(cmd.Context(), cfg, exportFlags.userID, logger)
	defer cleanup()
	if err != nil {
		return err
	}

	dir := pick(exportDir, cfg.OutputDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	pages, err := rendering.NewStatic(rendering.SystemClock{}).RenderAll(cmd.Context(), model)
	if err != nil {
		return err
	}
	indexID := rendering.LookupTheme(pick(exportFlags.template, cfg.Template)).ID

	files := make(map[string]string, len(pages)+2)
	for id, html := range pages {
		files[id+".html"] = html
	}
	files["index.html"] = pages[indexID]

	md, err := rendering.MarkdownExport(model, cfg.DocumentTemplate)
	if err != nil {
		return err
	}
	files["resume.md"] = md

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Debug("exported", zap.String("path", path))
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", len(names), dir)
	return nil
}

func runPDF(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&pdfFlags)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	model, cleanup, err := loadResume(cmd.Context(), cfg, pdfFlags.userID, logger)
	defer cleanup()
	if err != nil {
		return err
	}

	html, err := rendering.Document{}.Render(model, pick(pdfFlags.template, cfg.DocumentTemplate))
	if err != nil {
		return err
	}
	data, err := pdf.NewChromeRenderer(logger).RenderHTMLToPDF(cmd.Context(), html)
	if err != nil {
		return err
	}
	return writeOutput(cmd, pdfFlags.out, data)
}
