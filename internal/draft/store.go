// Package draft keeps named local resume drafts in a SQLite file so the CLI
// can work without the server.
package draft

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jonathan/resume-studio/internal/types"
)

// ErrNotFound is returned when no draft exists for a key
var ErrNotFound = errors.New("draft not found")

// Entry describes a stored draft
type Entry struct {
	Key       string    `json:"key"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a SQLite-backed draft store
type Store struct {
	db *sql.DB
}

// DefaultPath returns the draft database location in the user's home directory
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".resume_studio", "drafts.db")
}

// Open opens or creates the draft database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("draft: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("draft: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("draft: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS drafts (
		key        TEXT PRIMARY KEY,
		content    TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("draft: key is required")
	}
	return key, nil
}

// Save stores the model under key, replacing any previous draft
func (s *Store) Save(ctx context.Context, key string, model *types.ResumeModel) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if model == nil {
		model = types.NewEmptyResume()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO drafts (key, content, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		key, model.Serialize(), now,
	)
	if err != nil {
		return fmt.Errorf("draft: save %s: %w", key, err)
	}
	return nil
}

// Load returns the draft stored under key
func (s *Store) Load(ctx context.Context, key string) (*types.ResumeModel, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var content string
	err = s.db.QueryRowContext(ctx, `SELECT content FROM drafts WHERE key = ?`, key).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("draft: load %s: %w", key, err)
	}
	return types.ParseResume([]byte(content))
}

// List returns every draft, most recently updated first
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, updated_at FROM drafts ORDER BY updated_at DESC, key`)
	if err != nil {
		return nil, fmt.Errorf("draft: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			updated string
		)
		if err := rows.Scan(&e.Key, &updated); err != nil {
			return nil, fmt.Errorf("draft: scan: %w", err)
		}
		e.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the draft stored under key
func (s *Store) Delete(ctx context.Context, key string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("draft: delete %s: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
