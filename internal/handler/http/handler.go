package http

import (
	"time"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request through chi's Timeout middleware.
	// Zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
