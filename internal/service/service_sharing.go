package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/store"
	"github.com/MKhiriev/mood-journal/models"
)

// sharingService owns the per-user share flag. A share link is only a signed
// token; individual links are never revoked, the flag gates every read.
type sharingService struct {
	userRepository store.UserRepository
	tokens         TokenService

	shareURLPrefix string

	logger *logger.Logger
}

func NewSharingService(userRepository store.UserRepository, tokens TokenService, cfg config.App, logger *logger.Logger) SharingService {
	return &sharingService{
		userRepository: userRepository,
		tokens:         tokens,
		shareURLPrefix: cfg.ShareURLPrefix,
		logger:         logger,
	}
}

// EnableSharing turns the flag on and issues a fresh share link.
func (s *sharingService) EnableSharing(ctx context.Context, userID int64) (models.ShareLink, error) {
	log := logger.FromContext(ctx)

	if err := s.userRepository.SetShareEnabled(ctx, userID, true); err != nil {
		log.Err(err).Str("func", "sharingService.EnableSharing").Int64("user_id", userID).Msg("error enabling sharing")
		return models.ShareLink{}, fmt.Errorf("error enabling sharing: %w", err)
	}

	token, err := s.tokens.IssueShare(ctx, userID)
	if err != nil {
		return models.ShareLink{}, err
	}

	link := models.ShareLink{
		ShareURL: s.shareURLPrefix + token.String(),
		Token:    token.String(),
	}
	if token.ExpiresAt != nil {
		link.ExpiresAt = token.ExpiresAt.Time
	}

	log.Info().Str("func", "sharingService.EnableSharing").Int64("user_id", userID).Time("expires_at", link.ExpiresAt).Msg("sharing enabled")
	return link, nil
}

// DisableSharing turns the flag off. Outstanding share tokens keep verifying
// but stop granting access.
func (s *sharingService) DisableSharing(ctx context.Context, userID int64) error {
	if err := s.userRepository.SetShareEnabled(ctx, userID, false); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sharingService.DisableSharing").Int64("user_id", userID).Msg("error disabling sharing")
		return fmt.Errorf("error disabling sharing: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "sharingService.DisableSharing").Int64("user_id", userID).Msg("sharing disabled")
	return nil
}

// IsShareEnabled reads the current flag. A user that no longer exists is
// reported as not sharing.
func (s *sharingService) IsShareEnabled(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error finding user: %w", err)
	}

	return user.ShareEnabled, nil
}
