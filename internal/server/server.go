// Package server provides the HTTP server and routing for the
// relocation decision engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/config"
	"github.com/aristath/relocate/internal/modules/catalog"
	"github.com/aristath/relocate/internal/modules/scenarios"
	"github.com/aristath/relocate/internal/modules/snapshots"
)

// Config holds server configuration
type Config struct {
	Log        zerolog.Logger
	Cfg        *config.Config
	Generator  *scenarios.Generator
	Properties *catalog.PropertyRepository
	Borrowers  *catalog.BorrowerRepository
	Snapshots  *snapshots.Repository
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	cfg    *config.Config

	evaluationHandlers *EvaluationHandlers
	catalogHandlers    *CatalogHandlers
	snapshotHandlers   *SnapshotHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		cfg:    cfg.Cfg,

		evaluationHandlers: NewEvaluationHandlers(cfg.Generator, cfg.Cfg, cfg.Log),
		catalogHandlers:    NewCatalogHandlers(cfg.Properties, cfg.Borrowers, cfg.Log),
		snapshotHandlers:   NewSnapshotHandlers(cfg.Snapshots, cfg.Log),
	}

	s.setupMiddleware(cfg.Cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Router returns the configured router, for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/evaluate", s.evaluationHandlers.HandleEvaluate)
		r.Post("/grid", s.evaluationHandlers.HandleGrid)
		r.Post("/frontier", s.evaluationHandlers.HandleFrontier)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/properties", s.catalogHandlers.HandleListProperties)
			r.Post("/properties", s.catalogHandlers.HandleAddProperty)
			r.Get("/borrowers", s.catalogHandlers.HandleListBorrowers)
			r.Post("/borrowers", s.catalogHandlers.HandleAddBorrower)
		})

		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", s.snapshotHandlers.HandleList)
			r.Get("/{id}", s.snapshotHandlers.HandleGet)
		})
	})
}

// handleHealth reports basic liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
