package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Server runs the HTTP API until it is stopped or receives SIGINT/SIGTERM
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewServer creates a new server instance
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *zap.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.GetReadTimeout(),
			WriteTimeout: cfg.GetWriteTimeout(),
		},
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start serves requests and blocks until shutdown completes
func (s *Server) Start() error {
	s.logger.Info("HTTP server started", zap.String("addr", s.httpServer.Addr))

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server failed: %w", err)

	case <-s.ctx.Done():
		s.logger.Info("HTTP server stopping")

	case sig := <-sigChan:
		s.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))
	}

	return s.shutdown()
}

// Stop stops the server
func (s *Server) Stop() {
	s.cancel()
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}
