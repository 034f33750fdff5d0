// Package server implements the edgeviz HTTP API.
//
// Routes:
//
//	POST   /api/render      render a graph to an artifact
//	GET    /api/plots       list stored plots
//	POST   /api/plots       store a plot
//	GET    /api/plots/{id}  fetch one plot
//	DELETE /api/plots/{id}  delete a plot
//	GET    /api/live        websocket feed of render notifications
//	GET    /healthz         liveness probe
//	GET    /                embedded preview page
//
// Handlers return JSON errors shaped as {"error": ..., "code": ...},
// with the code taken from pkg/errors so clients can branch without
// string matching.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/edgeviz/edgeviz/pkg/cache"
	"github.com/edgeviz/edgeviz/pkg/config"
	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/observability"
	"github.com/edgeviz/edgeviz/pkg/store"
)

const shutdownTimeout = 10 * time.Second

// Server wires the HTTP API to its backends.
type Server struct {
	cfg    config.Config
	store  store.Store
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	hub    *hub
	http   *http.Server
}

// New assembles a server. The caller owns the store and cache
// lifetimes; a nil cache disables caching.
func New(cfg config.Config, st store.Store, ca cache.Cache, logger *log.Logger) *Server {
	if ca == nil {
		ca = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:    cfg,
		store:  st,
		cache:  ca,
		keyer:  cache.NewScopedKeyer(cache.NewDefaultKeyer(), "srv:"),
		logger: logger,
		hub:    newHub(logger),
	}
	s.http = &http.Server{
		Addr:    cfg.Server.Address,
		Handler: s.routes(),
		// Only the header read gets a deadline: /api/live holds
		// connections open indefinitely.
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.observe)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Route("/plots", func(r chi.Router) {
			r.Get("/", s.handleListPlots)
			r.Post("/", s.handleCreatePlot)
			r.Get("/{id}", s.handleGetPlot)
			r.Delete("/{id}", s.handleDeletePlot)
		})
		r.Get("/live", s.handleLive)
	})
	return r
}

// Run serves until the context is canceled, then drains in-flight
// requests and closes live websocket connections.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Server.Address)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	s.hub.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// observe reports every request to the server hooks and the debug log.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"dur", elapsed.Round(time.Millisecond))
	})
}

// statusRecorder captures the response status for the observe
// middleware. Hijack passes through so the websocket upgrade on
// /api/live still works behind it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hj.Hijack()
}

// errorResponse is the JSON error shape.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodePlotNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidColor, errors.ErrCodeInvalidGraph,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidName, errors.ErrCodeInvalidPath, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeMissingDependency, errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
