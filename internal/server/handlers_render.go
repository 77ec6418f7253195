package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/pdf"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (s *Server) decodeRender(w http.ResponseWriter, r *http.Request) (*types.RenderRequest, bool) {
	var req types.RenderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		writeError(w, s.logger, validationError(err))
		return nil, false
	}
	return &req, true
}

func (s *Server) handleRenderStatic(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRender(w, r)
	if !ok {
		return
	}
	html, err := s.static.Render(req.Resume, req.Template)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeHTML(w, html)
}

func (s *Server) handleRenderDocument(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRender(w, r)
	if !ok {
		return
	}
	html, err := rendering.Document{}.Render(req.Resume, req.Template)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeHTML(w, html)
}

func (s *Server) handleRenderMarkdown(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRender(w, r)
	if !ok {
		return
	}
	md, err := rendering.MarkdownExport(req.Resume, req.Template)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(md))
}

// handleRenderPreview renders the interactive fragment at the requested navigation state.
func (s *Server) handleRenderPreview(w http.ResponseWriter, r *http.Request) {
	var req types.PreviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, s.logger, validationError(err))
		return
	}

	state := s.interactive.State(req.Resume, req.Template)
	if req.Active != "" {
		state.Select(req.Active)
	}
	if req.MenuOpen {
		state.ToggleMenu()
	}
	writeHTML(w, s.interactive.RenderHTML(req.Resume, req.Template, state))
}

func (s *Server) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRender(w, r)
	if !ok {
		return
	}
	if s.deps.PDF == nil {
		writeError(w, s.logger, &ErrUnavailable{Feature: "PDF rendering"})
		return
	}
	html, err := rendering.Document{}.Render(req.Resume, req.Template)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pdf.DefaultTimeout)
	defer cancel()
	out, err := s.deps.PDF.RenderHTMLToPDF(ctx, html)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// handlePortfolio serves a user's public portfolio and counts the view.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, s.logger, &ErrValidation{Field: "user_id", Message: "must be a UUID"})
		return
	}
	stored, err := s.deps.Resumes.GetResume(r.Context(), userID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if stored == nil {
		writeError(w, s.logger, &ErrNotFound{Resource: "portfolio"})
		return
	}

	html, err := s.static.Render(&stored.Content, r.URL.Query().Get("template"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if _, err := s.deps.Resumes.IncrementViews(r.Context(), userID); err != nil {
		s.logger.Warn("failed to count portfolio view", zap.String("user_id", userID.String()), zap.Error(err))
	}
	writeHTML(w, html)
}
