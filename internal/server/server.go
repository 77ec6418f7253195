package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/deploy"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/pdf"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/server/middleware"
	"github.com/jonathan/resume-studio/internal/server/ratelimit"
)

const maxBodyBytes = 1 << 20

// Deps are the collaborators a Server is built from. Optional ones may be nil:
// a nil LLM or S3 publisher makes the matching route answer 503.
type Deps struct {
	Users       DBClient
	Resumes     ResumeStore
	JWT         *JWTService
	Passwords   *config.PasswordConfig
	PDF         pdf.Renderer
	LLM         llm.Client
	GitHub      func(token string) deploy.Publisher
	S3          deploy.Publisher
	RateLimiter *ratelimit.Limiter
	Logger      *zap.Logger
	Clock       rendering.Clock
	CORSOrigin  string
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	deps        Deps
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	authHandler *AuthHandler
	interactive *rendering.Interactive
	static      *rendering.Static
	handler     http.Handler
}

// New connects to the database, builds every collaborator from the environment and returns a server.
func New(ctx context.Context, cfg *config.ServerConfig, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	deps := Deps{
		Users:       database,
		Resumes:     database,
		JWT:         NewJWTService(jwtConfig),
		Passwords:   passwordConfig,
		PDF:         pdf.NewChromeRenderer(logger.Named("pdf")),
		GitHub:      func(token string) deploy.Publisher { return deploy.NewGitHubPages(token, logger.Named("deploy")) },
		RateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		Logger:      logger,
		Clock:       rendering.SystemClock{},
		CORSOrigin:  cfg.CORSOrigin,
	}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewClient(ctx, llm.ConfigFromEnv(), cfg.GeminiAPIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		deps.LLM = client
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI suggestions disabled")
	}

	if cfg.S3.Enabled() {
		s3cfg := deploy.S3Config(cfg.S3)
		client, err := deploy.NewS3Client(ctx, s3cfg)
		if err != nil {
			database.Close()
			return nil, err
		}
		deps.S3 = deploy.NewS3Bucket(client, s3cfg, logger.Named("deploy"))
	}

	s := NewWithDeps(deps)
	s.db = database
	s.httpServer.Addr = ":" + cfg.Port
	return s, nil
}

// NewWithDeps builds a server around existing collaborators without touching the network.
func NewWithDeps(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = rendering.SystemClock{}
	}
	if deps.RateLimiter == nil {
		deps.RateLimiter = ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})
	}
	if deps.CORSOrigin == "" {
		deps.CORSOrigin = "*"
	}

	s := &Server{
		deps:        deps,
		logger:      deps.Logger,
		rateLimiter: deps.RateLimiter,
		interactive: rendering.NewInteractive(deps.Clock),
		static:      rendering.NewStatic(deps.Clock),
	}
	s.authHandler = NewAuthHandler(NewUserService(deps.Users, deps.Passwords), deps.JWT, deps.Logger)

	mux := http.NewServeMux()
	s.routes(mux)
	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))

	s.httpServer = &http.Server{
		Addr:         ":8080",
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // PDF rendering and deploys are slow
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) routes(mux *http.ServeMux) {
	auth := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(s.deps.JWT.AsTokenValidator(), fn)
	}

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /auth/me", auth(s.handleMe))
	mux.HandleFunc("GET /templates", s.handleTemplates)

	mux.Handle("GET /resume", auth(s.handleGetResume))
	mux.Handle("PUT /resume", auth(s.handlePutResume))
	mux.Handle("GET /dashboard", auth(s.handleDashboard))

	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /completeness", s.handleCompleteness)

	mux.HandleFunc("POST /render/static", s.handleRenderStatic)
	mux.HandleFunc("POST /render/document", s.handleRenderDocument)
	mux.HandleFunc("POST /render/preview", s.handleRenderPreview)
	mux.HandleFunc("POST /render/markdown", s.handleRenderMarkdown)
	mux.HandleFunc("POST /render/pdf", s.handleRenderPDF)

	mux.HandleFunc("GET /portfolio/{user_id}", s.handlePortfolio)
	mux.Handle("GET /portfolio-views", auth(s.handleGetViews))
	mux.HandleFunc("POST /portfolio-views", s.handleIncrementViews)

	mux.Handle("POST /ai/generate", auth(s.handleGenerate))
	mux.Handle("POST /deploy/github", auth(s.handleDeployGitHub))
	mux.Handle("POST /deploy/s3", auth(s.handleDeployS3))
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.close()
		return fmt.Errorf("server error: %w", err)
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.close()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.deps.LLM != nil {
		_ = s.deps.LLM.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.deps.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects requests over the client's budget with 429
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps err to a status and writes {"error": message}. Internal
// errors are logged and replaced with a generic message.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		message = "Internal server error"
	}
	writeJSON(w, logger, status, map[string]string{"error": message})
}

// extractClientID uses the IP from RemoteAddr. Forwarded headers are not trusted.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("path", r.URL.Path),
		zap.String("client", extractClientID(r)),
		zap.Int("limit", info.Limit))

	writeJSON(w, s.logger, http.StatusTooManyRequests, response)
}
