package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/scoring"
	"github.com/jonathan/resume-studio/internal/server/middleware"
	"github.com/jonathan/resume-studio/internal/types"
)

// ResumeStore is the resume storage the handlers need
type ResumeStore interface {
	SaveResume(ctx context.Context, userID uuid.UUID, model *types.ResumeModel) error
	GetResume(ctx context.Context, userID uuid.UUID) (*types.StoredResume, error)
	IncrementViews(ctx context.Context, userID uuid.UUID) (int, error)
	GetViews(ctx context.Context, userID uuid.UUID) (int, error)
}

// ResumeResponse is the stored resume as returned by GET /resume
type ResumeResponse struct {
	Resume    *types.ResumeModel `json:"resume"`
	Title     string             `json:"title"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// DashboardResponse summarizes the signed-in user's resume
type DashboardResponse struct {
	Views        int                `json:"views"`
	ATSScore     int                `json:"atsScore"`
	Completeness types.Completeness `json:"completeness"`
	LastUpdated  string             `json:"lastUpdated"`
	HasResume    bool               `json:"hasResume"`
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, s.logger, &ErrInvalidCredentials{})
		return
	}
	user, err := s.authHandler.userService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, user)
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]any{
		"portfolio": rendering.PortfolioTemplates(),
		"document":  rendering.DocumentTemplates(),
	})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	stored, err := s.deps.Resumes.GetResume(r.Context(), userID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if stored == nil {
		writeJSON(w, s.logger, http.StatusOK, nil)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, ResumeResponse{
		Resume:    &stored.Content,
		Title:     stored.Title,
		UpdatedAt: stored.UpdatedAt,
	})
}

// handlePutResume validates the document shape against the resume schema before saving.
func (s *Server) handlePutResume(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, s.logger, &ErrValidation{Message: "request body too large"})
		return
	}
	if err := schemas.ValidateResume(raw); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			err = &ErrValidation{Message: "invalid JSON"}
		}
		writeError(w, s.logger, err)
		return
	}

	model, err := types.ParseResume(raw)
	if err != nil {
		writeError(w, s.logger, &ErrValidation{Message: err.Error()})
		return
	}
	if err := s.deps.Resumes.SaveResume(r.Context(), userID, model); err != nil {
		writeError(w, s.logger, err)
		return
	}
	s.logger.Debug("resume saved", zap.String("user_id", userID.String()))
	writeJSON(w, s.logger, http.StatusOK, map[string]bool{"saved": true})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	stored, err := s.deps.Resumes.GetResume(r.Context(), userID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	if stored == nil {
		writeJSON(w, s.logger, http.StatusOK, DashboardResponse{
			Completeness: scoring.ProfileCompleteness(types.NewEmptyResume()),
			LastUpdated:  "Never",
		})
		return
	}

	writeJSON(w, s.logger, http.StatusOK, DashboardResponse{
		Views:        stored.Views,
		ATSScore:     scoring.Score(&stored.Content, "").Score,
		Completeness: scoring.ProfileCompleteness(&stored.Content),
		LastUpdated:  rendering.RelativeTimeSince(s.deps.Clock, stored.UpdatedAt),
		HasResume:    true,
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, s.logger, validationError(err))
		return
	}
	writeJSON(w, s.logger, http.StatusOK, scoring.Score(req.Resume, req.JobDescription))
}

func (s *Server) handleCompleteness(w http.ResponseWriter, r *http.Request) {
	var model types.ResumeModel
	if err := decodeJSON(r, &model); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, scoring.ProfileCompleteness(&model))
}

func (s *Server) handleGetViews(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	views, err := s.deps.Resumes.GetViews(r.Context(), userID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, map[string]int{"views": views})
}

func (s *Server) handleIncrementViews(w http.ResponseWriter, r *http.Request) {
	var req types.ViewsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, s.logger, validationError(err))
		return
	}
	userID, _ := uuid.Parse(req.UserID)
	views, err := s.deps.Resumes.IncrementViews(r.Context(), userID)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, map[string]int{"views": views})
}
