// Package httpadapter exposes the dashboard JSON API plus health,
// readiness, and metrics endpoints.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
	"github.com/couchcryptid/quake-data-dashboard/internal/observability"
	"github.com/couchcryptid/quake-data-dashboard/internal/store"
)

// ReadinessChecker reports whether the service has completed its first feed
// fetch attempt.
type ReadinessChecker interface {
	CheckReadiness() bool
}

// RefreshTrigger requests a feed refresh, reporting false when one is
// already pending.
type RefreshTrigger interface {
	Trigger() bool
}

// Server exposes the dashboard API over HTTP.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	refresher  RefreshTrigger
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(addr string, st *store.Store, refresher RefreshTrigger, ready ReadinessChecker, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:     st,
		refresher: refresher,
		logger:    logger,
		metrics:   metrics,
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !ready.CheckReadiness() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/events", s.handleListEvents)
	mux.HandleFunc("GET /api/events/{id}", s.handleGetEvent)
	mux.HandleFunc("POST /api/refresh", s.handleRefresh)
	mux.HandleFunc("PUT /api/selection/{id}", s.handleSelect)
	mux.HandleFunc("GET /api/selection", s.handleGetSelection)
	mux.HandleFunc("DELETE /api/selection", s.handleClearSelection)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := domain.Query{Search: r.URL.Query().Get("search")}

	if raw := r.URL.Query().Get("min_magnitude"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "min_magnitude must be a number")
			return
		}
		q.MinMagnitude = min
	}

	s.metrics.FilterQueries.Inc()

	filtered := domain.Filter(s.store.Events(), q)
	status := s.store.Status()

	views := make([]eventView, 0, len(filtered))
	for _, e := range filtered {
		views = append(views, newEventView(e))
	}

	writeJSON(w, http.StatusOK, listResponse{
		Events:      views,
		Count:       len(views),
		LastUpdated: status.LastUpdated,
		Stale:       status.Stale,
		LastError:   status.LastError,
	})
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	event, ok := s.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, newEventView(event))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if !s.refresher.Trigger() {
		writeError(w, http.StatusConflict, "refresh already in progress")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh started"})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.Select(id); err != nil {
		if errors.Is(err, store.ErrUnknownEvent) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "selection failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	event, ok := s.store.Selected()
	if !ok {
		writeError(w, http.StatusNotFound, "no event selected")
		return
	}
	writeJSON(w, http.StatusOK, newEventView(event))
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	s.store.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
