package service

import (
	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/store"
)

type Services struct {
	TokenService   TokenService
	AccessService  AccessService
	AuthService    AuthService
	SharingService SharingService
	MoodService    MoodService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App, logger)
	sharingService := NewSharingService(storages.UserRepository, tokenService, cfg.App, logger)
	accessService := NewAccessService(tokenService, sharingService, logger)

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, tokenService, cfg.App, logger),
	)
	moodService := NewMoodValidationService().Wrap(
		NewMoodService(storages.MoodRepository, storages.PublicBoardCache, accessService, cfg.Storage.Cache, logger),
	)

	return &Services{
		TokenService:   tokenService,
		AccessService:  accessService,
		AuthService:    authService,
		SharingService: sharingService,
		MoodService:    moodService,
		AppInfoService: appInfoService,
	}, nil
}
