// Package server exposes the bid pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pace-estimating/pace-cli/internal/config"
	"github.com/pace-estimating/pace-cli/internal/pipeline"
	"github.com/pace-estimating/pace-cli/internal/store"
)

// Server is the HTTP front end for bid generation.
type Server struct {
	pipeline *pipeline.Pipeline
	runs     store.Store
	cfg      config.ServerConfig
	server   *http.Server

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates a Server with the given dependencies.
func New(p *pipeline.Pipeline, runs store.Store, cfg config.ServerConfig) *Server {
	return &Server{
		pipeline: p,
		runs:     runs,
		cfg:      cfg,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.rateLimit)

	r.Post("/v1/bids", s.handleGenerateBid)
	r.Get("/v1/runs", s.handleListRuns)
	r.Get("/v1/runs/{id}", s.handleGetRun)
	r.Get("/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	zap.L().Info("server: listening", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// rateLimit applies a per-client token bucket using the configured rate.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiterFor(clientIP(r)).Allow() {
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) limiterFor(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[ip]
	if !ok {
		l = rate.NewLimiter(rate.Limit(s.cfg.RatePerSecond), s.cfg.RateBurst)
		s.limiters[ip] = l
	}
	return l
}
