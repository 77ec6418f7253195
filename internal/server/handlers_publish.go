package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/deploy"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/server/middleware"
	"github.com/jonathan/resume-studio/internal/types"
)

// handleGenerate returns an AI suggestion for a single resume field.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.deps.LLM == nil {
		writeError(w, s.logger, &ErrUnavailable{Feature: "AI generation"})
		return
	}
	var req types.SuggestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, s.logger, validationError(err))
		return
	}

	content, err := llm.Suggest(r.Context(), s.deps.LLM, &req)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"content": content})
}

// publishRequest is the body of the deploy routes; GitHubToken is only read by the GitHub route
type publishRequest = types.DeployRequest

// resolveSite renders the resume from the request, or the stored one when absent.
func (s *Server) resolveSite(ctx context.Context, userID uuid.UUID, req *publishRequest) (deploy.Site, error) {
	model := req.Resume
	if model == nil {
		stored, err := s.deps.Resumes.GetResume(ctx, userID)
		if err != nil {
			return deploy.Site{}, err
		}
		if stored == nil {
			return deploy.Site{}, &ErrValidation{Field: "resume", Message: "Resume data is required"}
		}
		model = &stored.Content
	}
	if !model.HasName() {
		return deploy.Site{}, &ErrValidation{Field: "resume", Message: "Resume data is required"}
	}

	html, err := s.static.Render(model, req.Template)
	if err != nil {
		return deploy.Site{}, err
	}
	return deploy.Site{HTML: html, OwnerName: model.PersonalInfo.FullName}, nil
}

func (s *Server) publish(w http.ResponseWriter, r *http.Request, req *publishRequest, publisher deploy.Publisher) {
	userID, _ := middleware.GetUserID(r)
	site, err := s.resolveSite(r.Context(), userID, req)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	result, err := publisher.Publish(r.Context(), site)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	s.logger.Info("portfolio deployed", zap.String("user_id", userID.String()), zap.String("url", result.URL))
	writeJSON(w, s.logger, http.StatusOK, map[string]any{
		"success":  true,
		"url":      result.URL,
		"repoUrl":  result.RepoURL,
		"username": result.Username,
	})
}

func (s *Server) handleDeployGitHub(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, s.logger, &ErrValidation{Field: "githubToken", Message: "GitHub token is required"})
		return
	}
	if s.deps.GitHub == nil {
		writeError(w, s.logger, &ErrUnavailable{Feature: "GitHub deploy"})
		return
	}
	s.publish(w, r, &req, s.deps.GitHub(req.GitHubToken))
}

func (s *Server) handleDeployS3(w http.ResponseWriter, r *http.Request) {
	if s.deps.S3 == nil {
		writeError(w, s.logger, &ErrUnavailable{Feature: "S3 deploy"})
		return
	}
	var req publishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	s.publish(w, r, &req, s.deps.S3)
}
