// Package server provides the HTTP server and routing for PairLens.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"PairLens/internal/analyzer"
	"PairLens/internal/recorder"
)

// Config holds server configuration.
type Config struct {
	ListenAddr string
	Analyzer   *analyzer.Analyzer
	Recorder   recorder.Recorder
	Log        zerolog.Logger
}

// Server is the HTTP front end over the analysis pipeline.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	analyzer   *analyzer.Analyzer
	recorder   recorder.Recorder
	log        zerolog.Logger
}

// New creates the HTTP server and wires up routes.
func New(cfg Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		analyzer: cfg.Analyzer,
		recorder: cfg.Recorder,
		log:      cfg.Log.With().Str("component", "server").Logger(),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/correlation-analysis", s.handleCorrelationAnalysis)
	})

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Router exposes the chi mux, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
