// Package provider loads the resume model that renderers and the scorer consume.
package provider

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/draft"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// ErrNoData is returned when a provider has nothing stored for the key
var ErrNoData = errors.New("no resume data")

// Provider supplies a resume model for an opaque key
type Provider interface {
	Load(ctx context.Context, key string) (*types.ResumeModel, error)
}

// FileProvider reads a JSON resume from the path given as key. With Strict set
// the document must also pass the resume schema; otherwise wrong-shaped fields
// decode as empty.
type FileProvider struct {
	Strict bool
}

// Load reads the file at path
func (p FileProvider) Load(_ context.Context, path string) (*types.ResumeModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("failed to read resume %s: %w", path, err)
	}
	if p.Strict {
		if err := schemas.ValidateResume(data); err != nil {
			return nil, err
		}
	}
	return types.ParseResume(data)
}

// DraftProvider reads named drafts from the local store
type DraftProvider struct {
	Store *draft.Store
}

// Load returns the draft stored under key
func (p DraftProvider) Load(ctx context.Context, key string) (*types.ResumeModel, error) {
	m, err := p.Store.Load(ctx, key)
	if errors.Is(err, draft.ErrNotFound) {
		return nil, ErrNoData
	}
	return m, err
}

// ResumeStore is the storage method DBProvider needs
type ResumeStore interface {
	GetResume(ctx context.Context, userID uuid.UUID) (*types.StoredResume, error)
}

// DBProvider reads a user's stored resume; the key is the user ID
type DBProvider struct {
	Store ResumeStore
}

// Load returns the stored resume of the user
func (p DBProvider) Load(ctx context.Context, key string) (*types.ResumeModel, error) {
	userID, err := uuid.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", key, err)
	}
	stored, err := p.Store.GetResume(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrNoData
	}
	return &stored.Content, nil
}

// Static always returns a copy of the same model, or ErrNoData when it is nil
type Static struct {
	Model *types.ResumeModel
}

// Load ignores the key
func (p Static) Load(_ context.Context, _ string) (*types.ResumeModel, error) {
	if p.Model == nil {
		return nil, ErrNoData
	}
	return p.Model.Clone(), nil
}

// Bound pins a provider to a fixed key, so sources addressed by different
// keys (a file path, a draft name, a user ID) can share one Chain.
type Bound struct {
	Provider Provider
	Key      string
}

// Load ignores the key passed in and uses the bound one
func (b Bound) Load(ctx context.Context, _ string) (*types.ResumeModel, error) {
	if b.Key == "" {
		return nil, ErrNoData
	}
	return b.Provider.Load(ctx, b.Key)
}

// Chain tries providers in order and returns the first model found. A provider
// that fails is logged and skipped, so a remote outage falls back to local data.
type Chain struct {
	Providers []Provider
	Logger    *zap.Logger
}

// Load returns the first available model
func (c Chain) Load(ctx context.Context, key string) (*types.ResumeModel, error) {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var errs []error
	for i, p := range c.Providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := p.Load(ctx, key)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, ErrNoData) {
			logger.Warn("resume provider failed, trying next",
				zap.Int("provider", i),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, ErrNoData
}

// LoadOrEmpty loads a model and substitutes the empty skeleton when there is no data.
func LoadOrEmpty(ctx context.Context, p Provider, key string) (*types.ResumeModel, error) {
	m, err := p.Load(ctx, key)
	if errors.Is(err, ErrNoData) {
		return types.NewEmptyResume(), nil
	}
	return m, err
}
