package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/c7harry/bayform/internal/rendercache"
	"github.com/c7harry/bayform/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	repo       store.Repository
	cache      rendercache.Cache
	logger     *log.Logger
}

// Config holds server configuration
type Config struct {
	Addr   string
	Repo   store.Repository
	Cache  rendercache.Cache
	Logger *log.Logger
}

// New creates a new server instance
func New(cfg Config) *Server {
	s := &Server{
		repo:   cfg.Repo,
		cache:  cfg.Cache,
		logger: cfg.Logger,
	}
	if s.cache == nil {
		s.cache = rendercache.NewMemoryCache()
	}
	if s.logger == nil {
		s.logger = log.New(os.Stderr)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Rendering endpoints
	mux.HandleFunc("POST /render/latex", s.handleRenderLaTeX)
	mux.HandleFunc("POST /render/pdf", s.handleRenderPDF)
	mux.HandleFunc("POST /tailor", s.handleTailor)

	// CRUD endpoints for stored resumes
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /resumes/{id}", s.handleUpdateResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM,
// then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", "err", err)
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.cache.Close(); err != nil {
		s.logger.Warn("closing render cache", "err", err)
	}
	if err := s.repo.Close(); err != nil {
		s.logger.Warn("closing repository", "err", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", "err", err)
	}
}

// errorResponse writes an error JSON response with the status derived
// from the error type.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	s.jsonResponse(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}
