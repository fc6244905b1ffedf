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

	"github.com/jonathan/jobfit/internal/config"
	"github.com/jonathan/jobfit/internal/server/middleware"
	"github.com/jonathan/jobfit/internal/server/ratelimit"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 30 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	stores      *store.Stores
	jobs        []types.JobPosting
	cfg         *config.Config
	log         *zap.Logger
	rateLimiter *ratelimit.Limiter
	now         func() time.Time
}

// New creates a new server over the given stores and job catalog.
func New(cfg *config.Config, stores *store.Stores, jobs []types.JobPosting, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if jobs == nil {
		jobs = []types.JobPosting{}
	}

	s := &Server{
		stores:      stores,
		jobs:        jobs,
		cfg:         cfg,
		log:         log.Named("server"),
		rateLimiter: ratelimit.NewLimiter(ratelimit.FromSettings(cfg.Server.RateLimit.RequestsPerMinute, cfg.Server.RateLimit.Burst)),
		now:         time.Now,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Matching and search
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /jobs/search", s.handleSearchJobs)

	// Daily digest
	mux.HandleFunc("POST /digest", s.handleGenerateDigest)
	mux.HandleFunc("GET /digest", s.handleListDigests)
	mux.HandleFunc("GET /digest/{date}", s.handleGetDigest)

	// Tracker state
	mux.HandleFunc("GET /preferences", s.handleGetPreferences)
	mux.HandleFunc("PUT /preferences", s.handlePutPreferences)
	mux.HandleFunc("GET /status", s.handleListStatuses)
	mux.HandleFunc("PUT /status/{id}", s.handleSetStatus)
	mux.HandleFunc("GET /status/history", s.handleStatusHistory)
	mux.HandleFunc("GET /saved", s.handleListSaved)
	mux.HandleFunc("POST /saved/{id}", s.handleToggleSaved)

	// Resume builder
	mux.HandleFunc("POST /ats/score", s.handleATSScore)
	mux.HandleFunc("POST /ats/guidance", s.handleGuidance)
	mux.HandleFunc("POST /resume/migrate", s.handleMigrateResume)
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume", s.handlePutResume)

	// Verification
	mux.HandleFunc("GET /proof", s.handleProofStatus)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.AccessLog(s.log),
		middleware.Recover(s.log),
		middleware.CORS(s.cfg.Server.CORSOrigins),
		s.withRateLimit,
	)
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.rateLimiter.Stop()
	s.log.Info("server stopped")
	return err
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "ok", "jobs": len(s.jobs)})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes the JSON error envelope
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: ErrorBody{
		Code:      errorCode(status),
		Message:   message,
		RequestID: middleware.GetRequestID(r.Context()),
	}})
}

// fail maps err to a status and writes it. Server errors are logged and
// their details withheld from the client.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		s.errorResponse(w, r, status, "internal server error")
		return
	}
	s.errorResponse(w, r, status, err.Error())
}

// decodeJSON decodes a size-limited request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// pathID parses the integer {id} path value.
func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ErrValidation{Field: "id", Message: fmt.Sprintf("not a job id: %q", raw)}
	}
	return id, nil
}

// extractClientID returns the client IP from RemoteAddr.
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

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds()+0.999)))
	}

	s.log.Info("rate limit exceeded",
		zap.String("client", extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
		zap.Time("reset", info.ResetTime),
	)

	s.errorResponse(w, r, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
}
