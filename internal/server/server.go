// Package server exposes the SkillForge HTTP API: auth, discussions,
// leaderboard, challenge recording, and collab session bookkeeping.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/mkale/skillforge/internal/collab"
	"github.com/mkale/skillforge/internal/discuss"
	"github.com/mkale/skillforge/internal/leaderboard"
	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/store"
)

// Version is the API version reported by the health endpoint.
const Version = "v0.1.0"

// Server bundles the services behind the HTTP API.
type Server struct {
	log      *slog.Logger
	profiles store.ProfileRepo
	ledger   *ledger.Service
	discuss  *discuss.Service
	board    *leaderboard.Service
	collab   *collab.Service
	validate *validator.Validate
}

// New creates a Server over the given services.
func New(log *slog.Logger, profiles store.ProfileRepo, ledgerSvc *ledger.Service, discussSvc *discuss.Service, board *leaderboard.Service, collabSvc *collab.Service) *Server {
	return &Server{
		log:      log,
		profiles: profiles,
		ledger:   ledgerSvc,
		discuss:  discussSvc,
		board:    board,
		collab:   collabSvc,
		validate: validator.New(),
	}
}

// NewLogger returns the JSON logger used by the API process.
func NewLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, nil)
	return slog.New(handler).With(slog.String("service", "skillforge-api"))
}

// Router returns the chi router with default middleware and all routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok", "service": "skillforge", "version": Version,
		})
	})

	r.Post("/v1/auth/register", s.handleRegister)
	r.Post("/v1/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(WithAuth)
		r.Use(RequireAuth)

		r.Route("/v1/discussions", func(r chi.Router) {
			r.Get("/", s.handleListThreads)
			r.Post("/", s.handleCreateThread)
			r.Get("/{id}", s.handleGetThread)
			r.Get("/{id}/messages", s.handlePollMessages)
			r.Post("/{id}/messages", s.handlePostMessage)
		})
		r.Post("/v1/votes", s.handleVote)

		r.Get("/v1/leaderboard", s.handleLeaderboard)
		r.Post("/v1/completions", s.handleRecordCompletion)
		r.Get("/v1/stats", s.handleStats)

		r.Route("/v1/sessions", func(r chi.Router) {
			r.Get("/", s.handleListSessions)
			r.Post("/", s.handleCreateSession)
			r.Post("/{id}/join", s.handleJoinSession)
			r.Post("/{id}/leave", s.handleLeaveSession)
			r.Post("/{id}/end", s.handleEndSession)
		})
	})

	return r
}

// Run starts the HTTP server and shuts down gracefully on interrupt.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-ctx.Done():
	case sig := <-sigCh:
		s.log.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON parses the body into dst and runs validate-tag checks.
func (s *Server) decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return s.validate.Struct(dst)
}
