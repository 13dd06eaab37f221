// Package server provides the HTTP front end for Uttar.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/uttarai/uttar/internal/config"
	"github.com/uttarai/uttar/internal/qa"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the HTTP server for the question-answering front end.
type Server struct {
	engine *qa.Engine
	config *config.ServerConfig
	logger *zap.Logger
	tmpl   *template.Template
	server *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(engine *qa.Engine, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		engine: engine,
		config: cfg,
		logger: logger,
		tmpl:   template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleIndex)
	r.Get("/exit", s.handleExit)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
