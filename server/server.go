// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gaurav-prasanna/charsheet/core/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Runner runs one extraction. *pipeline.Runner satisfies it.
type Runner interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// Server is the HTTP API server for charsheet.
type Server struct {
	router          chi.Router
	runner          Runner
	defaultTemplate string
	log             *slog.Logger
}

// New creates and configures the HTTP server. defaultTemplate is used for
// requests that name no template.
func New(runner Runner, defaultTemplate string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		runner:          runner,
		defaultTemplate: defaultTemplate,
		log:             log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/api/extract", s.handleExtract)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
