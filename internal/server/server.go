package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/handler"
	"github.com/MKhiriev/mood-journal/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.httpServer.listen(); err != nil {
		return fmt.Errorf("HTTP server listen: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
		}
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("HTTP server shutdown failed")
		return err
	}
	return nil
}
