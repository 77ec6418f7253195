package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-studio/internal/types"
)

// DefaultResumeTitle is the title given to a user's single resume
const DefaultResumeTitle = "My Resume"

// SaveResume creates or replaces the resume of a user. The view count is kept.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, model *types.ResumeModel) error {
	if model == nil {
		model = types.NewEmptyResume()
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resumes (user_id, title, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET content = $3, updated_at = NOW()`,
		userID, DefaultResumeTitle, []byte(model.Serialize()),
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetResume returns the stored resume of a user, or nil if none was saved
func (db *DB) GetResume(ctx context.Context, userID uuid.UUID) (*types.StoredResume, error) {
	var (
		stored  types.StoredResume
		content []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, title, content, views, created_at, updated_at
		 FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&stored.UserID, &stored.Title, &content, &stored.Views, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	model, err := types.ParseResume(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode resume content: %w", err)
	}
	stored.Content = *model
	return &stored, nil
}

// IncrementViews adds one view to a user's portfolio and returns the new count.
// A user without a resume has no counter and 0 is returned.
func (db *DB) IncrementViews(ctx context.Context, userID uuid.UUID) (int, error) {
	var views int
	err := db.pool.QueryRow(ctx,
		`UPDATE resumes SET views = views + 1 WHERE user_id = $1 RETURNING views`,
		userID,
	).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return views, nil
}

// GetViews returns the portfolio view count of a user
func (db *DB) GetViews(ctx context.Context, userID uuid.UUID) (int, error) {
	var views int
	err := db.pool.QueryRow(ctx,
		`SELECT views FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get views: %w", err)
	}
	return views, nil
}
