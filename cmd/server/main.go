package main

import (
	"context"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/handler"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/server"
	"github.com/MKhiriev/mood-journal/internal/service"
	"github.com/MKhiriev/mood-journal/internal/store"
	"github.com/MKhiriev/mood-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("mood-journal-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("mood-journal-server",
		logger.WithLevel(cfg.Log.Level),
		logger.WithFile(cfg.Log.File),
	)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.String()).Msg("starting mood journal server")

	if buildInfo.Stamped() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
