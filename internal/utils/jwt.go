package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/mood-journal/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidJWTParams    = errors.New("invalid params for generating JWT token")
	ErrMissingJWTUserID    = errors.New("token carries no user id")
	ErrInvalidBearerHeader = errors.New("invalid authorization header")
)

// GenerateJWTToken signs claims with HMAC-SHA256.
//
// The caller is responsible for filling the registered claims (issuer,
// issued-at and, for expiring tokens, expires-at). Claims must carry a
// positive UserID and an issuer, and signKey must not be empty.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.TokenClaims{
//	    RegisteredClaims: jwt.RegisteredClaims{Issuer: "mood-journal", IssuedAt: jwt.NewNumericDate(now)},
//	    UserID:           42,
//	}, "secret")
func GenerateJWTToken(claims models.TokenClaims, signKey string) (models.Token, error) {
	if claims.Issuer == "" || claims.UserID <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{TokenClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - signature verification with signKey (HS256 only)
//   - issuer (iss) check against tokenIssuer
//   - expiration (exp) check against now(), when the token has an exp claim
//   - presence of a positive userId claim
//
// A nil now uses [time.Now].
func ValidateAndParseJWTToken(tokenString, signKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 {
		return models.Token{}, ErrMissingJWTUserID
	}

	return models.Token{TokenClaims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidBearerHeader
	}
	return parts[1], nil
}
