// Package server exposes the validation engine over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"chargekit/ocpicheck/pkg/config"
	"chargekit/ocpicheck/pkg/history"
	"chargekit/ocpicheck/pkg/ocpi"
	"chargekit/ocpicheck/pkg/telemetry/health"
	"chargekit/ocpicheck/pkg/telemetry/metrics"
)

// Server is the HTTP validation API server.
type Server struct {
	config       *config.ServerConfig
	validator    *ocpi.Validator
	store        history.Store
	collector    *metrics.Collector
	health       *health.Checker
	logger       *slog.Logger
	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// Options carries the server's collaborators. Store and Collector are
// optional; nil disables history recording and metrics respectively.
type Options struct {
	Config    *config.ServerConfig
	Validator *ocpi.Validator
	Store     history.Store
	Collector *metrics.Collector
	Logger    *slog.Logger
}

// New creates a validation API server.
func New(opts Options) *Server {
	if opts.Validator == nil {
		opts.Validator = ocpi.NewValidator()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	checker := health.New(0)
	if opts.Store != nil {
		store := opts.Store
		checker.RegisterCheck("history", func(ctx context.Context) error {
			_, err := store.List(ctx, history.Filter{Limit: 1})
			return err
		})
	}

	return &Server{
		config:       opts.Config,
		validator:    opts.Validator,
		store:        opts.Store,
		collector:    opts.Collector,
		health:       checker,
		logger:       opts.Logger,
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:         s.config.ListenAddress,
		Handler:      s.Routes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting validation API server", "address", s.config.ListenAddress)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server, waiting up to the
// configured timeout for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("initiating graceful shutdown", "timeout", s.config.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			shutdownErr = fmt.Errorf("graceful shutdown failed: %w", err)
		}
	})

	return shutdownErr
}

// Stop requests shutdown from another goroutine.
func (s *Server) Stop() {
	select {
	case s.shutdownChan <- struct{}{}:
	default:
	}
}
