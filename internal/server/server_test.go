package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/server/ratelimit"
	"github.com/jonathan/resume-studio/internal/types"
)

const sampleResumeJSON = `{
	"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com", "jobTitle": "Engineer", "summary": "Builds reliable systems."},
	"experience": [{"title": "Lead", "company": "Acme", "startDate": "2020", "endDate": "Present", "description": "Led the platform team"}],
	"education": [{"school": "MIT", "degree": "BSc"}],
	"skills": "Go, SQL, <script>",
	"projects": [{"name": "Ledger", "technologies": "Go", "link": "github.com/jane/ledger"}]
}`

func (env *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "192.0.2.1:5555"
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(w, req)
	return w
}

func (env *testEnv) register(t *testing.T, email string) (string, uuid.UUID) {
	t.Helper()
	w := env.do(t, http.MethodPost, "/auth/register", `{"name":"Jane Doe","email":"`+email+`","password":"password123"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody[map[string]string](t, w)["status"])
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestCORSMiddleware(t *testing.T) {
	env := newTestEnv(func(d *Deps) { d.CORSOrigin = "https://studio.example.com" })

	w := env.do(t, http.MethodOptions, "/resume", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://studio.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestTemplatesEndpoint(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodGet, "/templates", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody[map[string][]map[string]string](t, w)
	require.Len(t, body["portfolio"], 5)
	require.Len(t, body["document"], 3)
	assert.Equal(t, "classic", body["portfolio"][0]["id"])
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv()
	token, userID := env.register(t, "Jane@Example.com")
	assert.NotEmpty(t, token)

	claims, err := env.jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	w := env.do(t, http.MethodPost, "/auth/login", `{"email":"jane@example.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[types.LoginResponse](t, w)
	assert.Equal(t, userID, resp.User.ID)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.NotContains(t, w.Body.String(), "password")

	w = env.do(t, http.MethodGet, "/auth/me", "", resp.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jane Doe", decodeBody[types.User](t, w).Name)
}

func TestRegister_Duplicate(t *testing.T) {
	env := newTestEnv()
	env.register(t, "jane@example.com")

	w := env.do(t, http.MethodPost, "/auth/register", `{"name":"J","email":"JANE@example.com","password":"password123"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decodeBody[map[string]string](t, w)["error"], "already registered")
}

func TestRegister_Validation(t *testing.T) {
	env := newTestEnv()
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing name", `{"email":"a@b.com","password":"password123"}`},
		{"bad email", `{"name":"A","email":"nope","password":"password123"}`},
		{"short password", `{"name":"A","email":"a@b.com","password":"short"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeBody[map[string]string](t, w)["error"], "validation error")
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv()
	env.register(t, "jane@example.com")

	for _, body := range []string{
		`{"email":"jane@example.com","password":"wrong-password"}`,
		`{"email":"nobody@example.com","password":"password123"}`,
	} {
		w := env.do(t, http.MethodPost, "/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid email or password", decodeBody[map[string]string](t, w)["error"])
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv()
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/resume"},
		{http.MethodPut, "/resume"},
		{http.MethodGet, "/dashboard"},
		{http.MethodGet, "/portfolio-views"},
		{http.MethodPost, "/ai/generate"},
		{http.MethodPost, "/deploy/github"},
	} {
		w := env.do(t, route.method, route.path, "{}", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)

		w = env.do(t, route.method, route.path, "{}", "forged.token.value")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestResumeLifecycle(t *testing.T) {
	env := newTestEnv()
	token, userID := env.register(t, "jane@example.com")

	w := env.do(t, http.MethodGet, "/resume", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))

	w = env.do(t, http.MethodPut, "/resume", sampleResumeJSON, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodGet, "/resume", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[ResumeResponse](t, w)
	assert.Equal(t, "Jane Doe", resp.Resume.PersonalInfo.FullName)
	assert.Equal(t, "My Resume", resp.Title)
	assert.True(t, fixedNow.Equal(resp.UpdatedAt))

	stored, _ := env.store.GetResume(t.Context(), userID)
	require.NotNil(t, stored)
	assert.Equal(t, "Acme", stored.Content.Experience[0].Company)
}

func TestPutResume_SchemaViolation(t *testing.T) {
	env := newTestEnv()
	token, userID := env.register(t, "jane@example.com")

	w := env.do(t, http.MethodPut, "/resume", `{"experience": "not a list"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "experience")

	w = env.do(t, http.MethodPut, "/resume", `{broken`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, _ := env.store.GetResume(t.Context(), userID)
	assert.Nil(t, stored)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv()
	token, userID := env.register(t, "jane@example.com")

	w := env.do(t, http.MethodGet, "/dashboard", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	empty := decodeBody[DashboardResponse](t, w)
	assert.False(t, empty.HasResume)
	assert.Equal(t, "Never", empty.LastUpdated)
	assert.Equal(t, 0, empty.ATSScore)

	model, err := types.ParseResume([]byte(sampleResumeJSON))
	require.NoError(t, err)
	require.NoError(t, env.store.SaveResume(t.Context(), userID, model))
	env.store.resumes[userID].UpdatedAt = fixedNow.Add(-3 * time.Hour)
	env.store.resumes[userID].Views = 4

	w = env.do(t, http.MethodGet, "/dashboard", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decodeBody[DashboardResponse](t, w)
	assert.True(t, dash.HasResume)
	assert.Equal(t, 4, dash.Views)
	assert.Equal(t, "3h ago", dash.LastUpdated)
	assert.Greater(t, dash.ATSScore, 0)
	assert.Greater(t, dash.Completeness.Percent, 0)
}

func TestScoreEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/score", `{"resume": `+sampleResumeJSON+`, "jobDescription": "platform reliable systems"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody[types.ScoreResult](t, w)
	assert.Len(t, result.Checks, 6)
	assert.Contains(t, result.Checks[5].Message, "Matched")

	w = env.do(t, http.MethodPost, "/score", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompletenessEndpoint(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/completeness", `{"personalInfo":{"fullName":"Jane","email":"j@x.com"}}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	c := decodeBody[types.Completeness](t, w)
	assert.Equal(t, 20, c.Percent)
	assert.Equal(t, "Low", c.Label)
}

func TestRenderStatic(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/render/static", `{"resume": `+sampleResumeJSON+`, "template": "dark"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	html := w.Body.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `data-template="dark"`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>,")
}

func TestRenderStatic_UnknownTemplateFallsBack(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/render/static", `{"resume": `+sampleResumeJSON+`, "template": "nope"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-template="classic"`)
}

func TestRenderDocumentAndMarkdown(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/render/document", `{"resume": `+sampleResumeJSON+`, "template": "professional"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")

	w = env.do(t, http.MethodPost, "/render/markdown", `{"resume": `+sampleResumeJSON+`}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Body.String(), "Jane Doe")
}

func TestRenderPreview(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/render/preview", `{"resume": `+sampleResumeJSON+`, "template": "minimal", "active": "projects", "menuOpen": true}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	html := w.Body.String()
	assert.False(t, strings.HasPrefix(html, "<!DOCTYPE"))
	assert.Contains(t, html, `data-template="minimal"`)
	assert.Contains(t, html, `data-target="projects"`)
	assert.Contains(t, html, `aria-current="page"`)
}

func TestRenderPDF(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, http.MethodPost, "/render/pdf", `{"resume": `+sampleResumeJSON+`, "template": "modern"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	assert.Contains(t, env.pdf.html, "Jane Doe")

	env.pdf.err = errBoom
	w = env.do(t, http.MethodPost, "/render/pdf", `{"resume": `+sampleResumeJSON+`}`, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeBody[map[string]string](t, w)["error"])
}

func TestRenderPDF_Unavailable(t *testing.T) {
	env := newTestEnv(func(d *Deps) { d.PDF = nil })
	w := env.do(t, http.MethodPost, "/render/pdf", `{"resume": `+sampleResumeJSON+`}`, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPortfolioEndpoint(t *testing.T) {
	env := newTestEnv()
	_, userID := env.register(t, "jane@example.com")

	w := env.do(t, http.MethodGet, "/portfolio/"+userID.String(), "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/portfolio/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	model, err := types.ParseResume([]byte(sampleResumeJSON))
	require.NoError(t, err)
	require.NoError(t, env.store.SaveResume(t.Context(), userID, model))

	w = env.do(t, http.MethodGet, "/portfolio/"+userID.String()+"?template=developer", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-template="developer"`)

	views, _ := env.store.GetViews(t.Context(), userID)
	assert.Equal(t, 1, views)
}

func TestPortfolioViews(t *testing.T) {
	env := newTestEnv()
	token, userID := env.register(t, "jane@example.com")
	model, err := types.ParseResume([]byte(sampleResumeJSON))
	require.NoError(t, err)
	require.NoError(t, env.store.SaveResume(t.Context(), userID, model))

	for want := 1; want <= 2; want++ {
		w := env.do(t, http.MethodPost, "/portfolio-views", `{"userId":"`+userID.String()+`"}`, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, decodeBody[map[string]int](t, w)["views"])
	}

	w := env.do(t, http.MethodGet, "/portfolio-views", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decodeBody[map[string]int](t, w)["views"])

	w = env.do(t, http.MethodPost, "/portfolio-views", `{"userId":"nope"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint(t *testing.T) {
	env := newTestEnv()
	token, _ := env.register(t, "jane@example.com")

	w := env.do(t, http.MethodPost, "/ai/generate", `{"type":"summary","prompt":"Backend Engineer","linkedin":"linkedin.com/in/jane"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Seasoned engineer.", decodeBody[map[string]string](t, w)["content"])
	require.Len(t, env.llm.prompts, 1)
	assert.Contains(t, env.llm.prompts[0], "linkedin.com/in/jane")

	w = env.do(t, http.MethodPost, "/ai/generate", `{"type":"summary","prompt":""}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/ai/generate", `{"type":"cover-letter","prompt":"Backend Engineer"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, env.llm.prompts, 1)
}

func TestGenerateEndpoint_Unavailable(t *testing.T) {
	env := newTestEnv(func(d *Deps) { d.LLM = nil })
	token, _ := env.register(t, "jane@example.com")

	w := env.do(t, http.MethodPost, "/ai/generate", `{"prompt":"x"}`, token)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDeployGitHub(t *testing.T) {
	env := newTestEnv()
	token, _ := env.register(t, "jane@example.com")

	w := env.do(t, http.MethodPost, "/deploy/github", `{"githubToken":"gh-token","template":"gradient","resume":`+sampleResumeJSON+`}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "https://octocat.github.io/my-portfolio", body["url"])

	assert.Equal(t, "gh-token", env.publisher.token)
	assert.Equal(t, "Jane Doe", env.publisher.site.OwnerName)
	assert.Contains(t, env.publisher.site.HTML, `data-template="gradient"`)
}

func TestDeployGitHub_UsesStoredResume(t *testing.T) {
	env := newTestEnv()
	token, userID := env.register(t, "jane@example.com")

	w := env.do(t, http.MethodPost, "/deploy/github", `{"githubToken":"gh-token"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code, "no stored resume")

	model, err := types.ParseResume([]byte(sampleResumeJSON))
	require.NoError(t, err)
	require.NoError(t, env.store.SaveResume(t.Context(), userID, model))

	w = env.do(t, http.MethodPost, "/deploy/github", `{"githubToken":"gh-token"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, env.publisher.site.HTML, "Jane Doe")
}

func TestDeployGitHub_Errors(t *testing.T) {
	env := newTestEnv()
	token, _ := env.register(t, "jane@example.com")

	w := env.do(t, http.MethodPost, "/deploy/github", `{"resume":`+sampleResumeJSON+`}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "GitHub token is required")

	w = env.do(t, http.MethodPost, "/deploy/github", `{"githubToken":"bad","resume":`+sampleResumeJSON+`}`, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid GitHub token")
}

func TestDeployS3(t *testing.T) {
	env := newTestEnv()
	token, _ := env.register(t, "jane@example.com")
	w := env.do(t, http.MethodPost, "/deploy/s3", `{"resume":`+sampleResumeJSON+`}`, token)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	publisher := &fakePublisher{}
	env = newTestEnv(func(d *Deps) { d.S3 = publisher })
	token, _ = env.register(t, "jane@example.com")
	w = env.do(t, http.MethodPost, "/deploy/s3", `{"resume":`+sampleResumeJSON+`}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, publisher.site.HTML, "<!DOCTYPE html>")
}

func TestRateLimitMiddleware(t *testing.T) {
	env := newTestEnv(func(d *Deps) {
		d.RateLimiter = ratelimit.NewLimiter(&ratelimit.Config{Enabled: true, DefaultLimit: 2, DefaultWindow: time.Minute})
	})

	for i := 0; i < 2; i++ {
		w := env.do(t, http.MethodGet, "/templates", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := env.do(t, http.MethodGet, "/templates", "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decodeBody[map[string]any](t, w)["error"])

	w = env.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code, "health is never limited")
}

func TestInternalErrorsAreHidden(t *testing.T) {
	env := newTestEnv()
	token, _ := env.register(t, "jane@example.com")
	env.store.failGet = errBoom

	w := env.do(t, http.MethodGet, "/resume", "", token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
