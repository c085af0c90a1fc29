// Package server exposes the tax engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/rgehrsitz/rptax/internal/calculation"
	"go.uber.org/zap"
)

const defaultMaxBodyBytes = 1 << 20

// Options configures the HTTP listener
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// ShutdownTimeout bounds the drain of in-flight requests
	ShutdownTimeout time.Duration
}

// DefaultOptions listens on :8080 with conservative timeouts
func DefaultOptions() Options {
	return Options{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server routes HTTP requests to a calculation engine
type Server struct {
	engine       *calculation.Engine
	logger       *zap.Logger
	idGen        func() string
	maxBodyBytes int64
}

// New creates a new server backed by engine
func New(engine *calculation.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		engine:       engine,
		logger:       logger,
		idGen:        func() string { return ulid.Make().String() },
		maxBodyBytes: defaultMaxBodyBytes,
	}
}

// Routes builds the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/tables", s.handleTables)
		r.Post("/returns/compute", s.handleCompute)
		r.Post("/returns/compare", s.handleCompare)
		r.Post("/returns/solve", s.handleSolve)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests
func (s *Server) ListenAndServe(ctx context.Context, opts Options) error {
	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("rptax api listening", zap.String("addr", opts.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutdown requested; draining requests")
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
