// Package server exposes the credibility-analysis HTTP API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"NewsVerifier/internal/config"
	"NewsVerifier/internal/usecase"
)

// Server is the HTTP API server.
type Server struct {
	router     chi.Router
	analyzer   *usecase.Analyzer
	summarizer *usecase.Summarizer
	similar    *usecase.SimilarFinder
	logger     *slog.Logger

	classifierReady bool
	summarizerReady bool
}

// Deps wires the use cases into the HTTP surface.
type Deps struct {
	Analyzer   *usecase.Analyzer
	Summarizer *usecase.Summarizer
	Similar    *usecase.SimilarFinder
	Logger     *slog.Logger

	ClassifierReady bool
	SummarizerReady bool
}

// New creates a configured API server with all routes and middleware.
func New(cfg config.ServerConfig, deps Deps) *Server {
	s := &Server{
		analyzer:        deps.Analyzer,
		summarizer:      deps.Summarizer,
		similar:         deps.Similar,
		logger:          deps.Logger,
		classifierReady: deps.ClassifierReady,
		summarizerReady: deps.SummarizerReady,
	}
	s.router = s.buildRouter(cfg.AllowedOrigins)
	return s
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) buildRouter(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/summarize", s.handleSummarize)
	r.Get("/similar", s.handleSimilar)
	r.Post("/similar", s.handleSimilar)

	return r
}

// ListenAndServe starts the HTTP server and blocks until a shutdown
// signal arrives or the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("http server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case sig := <-done:
		s.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(ctx)
}
