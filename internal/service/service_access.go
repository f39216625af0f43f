package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/models"
)

// accessService is the gate in front of every journal read and write.
//
// It distinguishes three scopes: the owner (session token), a share link
// reader (share token plus the owner's share flag) and the anonymous public.
type accessService struct {
	tokens  TokenService
	sharing shareStatusChecker

	logger *logger.Logger
}

func NewAccessService(tokens TokenService, sharing SharingService, logger *logger.Logger) AccessService {
	return &accessService{
		tokens:  tokens,
		sharing: sharing,
		logger:  logger,
	}
}

// Authenticate resolves a session token to the caller's identity. Share
// tokens are refused here; they only open the shared read path.
func (a *accessService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	if tokenString == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	token, err := a.tokens.Verify(ctx, tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	if token.IsShare() {
		logger.FromContext(ctx).Warn().
			Str("func", "accessService.Authenticate").
			Int64("user_id", token.UserID).
			Msg("share token presented as session token")
		return models.Identity{}, ErrInvalidToken
	}

	return models.Identity{UserID: token.UserID}, nil
}

// AuthorizeOwnerAccess answers ErrNotFound rather than a forbidden error so
// that a foreign entry looks exactly like a missing one.
func (a *accessService) AuthorizeOwnerAccess(identity models.Identity, resourceOwnerID int64) error {
	if identity.UserID <= 0 || identity.UserID != resourceOwnerID {
		return ErrNotFound
	}
	return nil
}

// AuthorizeSharedAccess returns the owner a valid share token points to,
// provided the owner still has sharing enabled at the time of the read.
func (a *accessService) AuthorizeSharedAccess(ctx context.Context, shareToken string) (int64, error) {
	log := logger.FromContext(ctx)

	if shareToken == "" {
		return 0, ErrUnauthenticated
	}

	token, err := a.tokens.Verify(ctx, shareToken)
	if err != nil {
		return 0, err
	}

	if !token.IsShare() {
		log.Warn().
			Str("func", "accessService.AuthorizeSharedAccess").
			Int64("user_id", token.UserID).
			Msg("session token presented as share token")
		return 0, ErrInvalidToken
	}

	enabled, err := a.sharing.IsShareEnabled(ctx, token.UserID)
	if err != nil {
		return 0, fmt.Errorf("error reading share flag: %w", err)
	}
	if !enabled {
		return 0, ErrSharingDisabled
	}

	return token.UserID, nil
}

// AuthorizePublicAccess always succeeds; the public board has no scope.
func (a *accessService) AuthorizePublicAccess() error {
	return nil
}
