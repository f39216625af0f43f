package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/utils"
	"github.com/MKhiriev/mood-journal/models"
)

// tokenService signs tokens with HS256 using a single process-wide key.
//
// Session tokens carry no expiry. Share tokens expire shareTTL after issue.
// Expiry is always checked against now, which tests replace.
type tokenService struct {
	signKey  string
	issuer   string
	shareTTL time.Duration

	now func() time.Time

	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		shareTTL: cfg.ShareTokenTTL,
		now:      time.Now,
		logger:   logger,
	}
}

// IssueSession returns a non-expiring token for userID.
func (s *tokenService) IssueSession(ctx context.Context, userID int64) (models.Token, error) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   s.issuer,
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
		UserID: userID,
	}

	return s.sign(ctx, claims)
}

// IssueShare returns a read-only share token for userID.
func (s *tokenService) IssueShare(ctx context.Context, userID int64) (models.Token, error) {
	issuedAt := s.now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.shareTTL)),
		},
		UserID: userID,
		Shared: true,
	}

	return s.sign(ctx, claims)
}

func (s *tokenService) sign(ctx context.Context, claims models.TokenClaims) (models.Token, error) {
	token, err := utils.GenerateJWTToken(claims, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tokenService.sign").
			Int64("user_id", claims.UserID).
			Bool("shared", claims.Shared).
			Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks signature, issuer, expiry and the user id claim. Every
// failure is reported as ErrInvalidToken.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "tokenService.Verify").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}
