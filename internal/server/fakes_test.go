package server

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/deploy"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/server/ratelimit"
	"github.com/jonathan/resume-studio/internal/types"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// memStore implements DBClient and ResumeStore in memory
type memStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*db.User
	resumes map[uuid.UUID]*types.StoredResume
	failGet error
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[uuid.UUID]*db.User),
		resumes: make(map[uuid.UUID]*types.StoredResume),
	}
}

func (m *memStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := m.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (m *memStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.users[id] = &db.User{ID: id, Name: name, Email: strings.ToLower(email), PasswordHash: passwordHash, CreatedAt: fixedNow}
	return id, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memStore) GetUserByID(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *memStore) SaveResume(_ context.Context, userID uuid.UUID, model *types.ResumeModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := m.resumes[userID]
	stored := &types.StoredResume{UserID: userID, Title: db.DefaultResumeTitle, Content: *model.Clone(), CreatedAt: fixedNow, UpdatedAt: fixedNow}
	if existing != nil {
		stored.Views = existing.Views
		stored.CreatedAt = existing.CreatedAt
	}
	m.resumes[userID] = stored
	return nil
}

func (m *memStore) GetResume(_ context.Context, userID uuid.UUID) (*types.StoredResume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return nil, m.failGet
	}
	stored, ok := m.resumes[userID]
	if !ok {
		return nil, nil
	}
	cp := *stored
	return &cp, nil
}

func (m *memStore) IncrementViews(_ context.Context, userID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.resumes[userID]
	if !ok {
		return 0, nil
	}
	stored.Views++
	return stored.Views, nil
}

func (m *memStore) GetViews(_ context.Context, userID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stored, ok := m.resumes[userID]; ok {
		return stored.Views, nil
	}
	return 0, nil
}

type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeLLM) Close() error { return nil }

type fakePDF struct {
	html string
	err  error
}

func (f *fakePDF) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakePublisher struct {
	token string
	site  deploy.Site
	err   error
}

func (f *fakePublisher) Publish(_ context.Context, site deploy.Site) (*deploy.Result, error) {
	f.site = site
	if f.err != nil {
		return nil, f.err
	}
	if f.token == "bad" {
		return nil, &deploy.AuthError{Message: "Invalid GitHub token. Please reconnect."}
	}
	return &deploy.Result{URL: "https://octocat.github.io/my-portfolio", RepoURL: "https://github.com/octocat/my-portfolio", Username: "octocat"}, nil
}

var errBoom = errors.New("boom")

type testEnv struct {
	server    *Server
	store     *memStore
	llm       *fakeLLM
	pdf       *fakePDF
	publisher *fakePublisher
	jwt       *JWTService
}

func newTestEnv(mutate ...func(*Deps)) *testEnv {
	env := &testEnv{
		store:     newMemStore(),
		llm:       &fakeLLM{response: "**Seasoned** engineer."},
		pdf:       &fakePDF{},
		publisher: &fakePublisher{},
		jwt:       NewJWTService(&config.JWTConfig{Secret: testSecret, ExpirationHours: 168}),
	}
	deps := Deps{
		Users:     env.store,
		Resumes:   env.store,
		JWT:       env.jwt,
		Passwords: &config.PasswordConfig{BcryptCost: 10},
		PDF:       env.pdf,
		LLM:       env.llm,
		GitHub: func(token string) deploy.Publisher {
			env.publisher.token = token
			return env.publisher
		},
		RateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
		Clock:       rendering.FixedClock(fixedNow),
	}
	for _, fn := range mutate {
		fn(&deps)
	}
	env.server = NewWithDeps(deps)
	return env
}
