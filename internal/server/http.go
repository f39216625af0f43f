package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener

	// ready is closed once the listener is bound.
	ready chan struct{}

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		ready:  make(chan struct{}),
		logger: logger,
	}
}

// listen binds the configured address.
func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	h.listener = ln
	close(h.ready)

	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")
	return nil
}

// serve blocks until the server is shut down. A graceful shutdown is not an
// error.
func (h *httpServer) serve() error {
	if h.listener == nil {
		return errNotListening
	}
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server shutdown")
	return h.server.Shutdown(ctx)
}

// addr returns the bound address, or nil before listen.
func (h *httpServer) addr() net.Addr {
	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}
