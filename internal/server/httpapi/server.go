// Package httpapi exposes the pomodoro services over JSON, CSV and server-sent events.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ports"
	"github.com/renato0307/pomo/internal/services"
)

// UserHeader selects the tenant of a request
const UserHeader = "X-Pomo-User"

const (
	maxImportSize   = 10 << 20
	shutdownTimeout = 5 * time.Second
)

// Deps are the collaborators of the HTTP API
type Deps struct {
	DefaultUser string
	Events      ports.EventSubscriber
	Pomodoro    *services.PomodoroService
	Stats       *services.StatsService
	Transfer    *services.TransferService
}

// Server serves the HTTP API
type Server struct {
	defaultUser string
	events      ports.EventSubscriber
	pomodoro    *services.PomodoroService
	stats       *services.StatsService
	transfer    *services.TransferService
}

// NewServer creates a new Server
func NewServer(deps Deps) *Server {
	return &Server{
		defaultUser: deps.DefaultUser,
		events:      deps.Events,
		pomodoro:    deps.Pomodoro,
		stats:       deps.Stats,
		transfer:    deps.Transfer,
	}
}

// Routes builds the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.tenantMiddleware)

		r.Post("/start", s.handleStart)
		r.Post("/complete", s.handleComplete)
		r.Get("/sessions", s.handleListSessions)
		r.Get("/stats", s.handleStats)

		r.Route("/gamification", func(r chi.Router) {
			r.Get("/stats", s.handleProgress)
			r.Get("/achievements", s.handleAchievements)
			r.Get("/weekly-stats", s.handleWeekly)
			r.Get("/monthly-stats", s.handleMonthly)
		})

		r.Get("/export/csv", s.handleExport)
		r.Post("/import/csv", s.handleImport)

		r.Post("/sync/{room}", s.handleSync)
		r.Get("/sync/{room}/events", s.handleSyncEvents)
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		// event streams end with ctx, otherwise Shutdown waits for them
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		logging.Logger.Info("Stopping HTTP server", "addr", addr)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	}
}
