package service

import "errors"

var (
	// ErrUnauthenticated means no token was presented.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidToken covers bad signatures, malformed or expired tokens and
	// share tokens presented where a session is required.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNotFound is returned both for missing entries and for entries of
	// another owner.
	ErrNotFound        = errors.New("mood entry not found")
	ErrSharingDisabled = errors.New("sharing not enabled")
	ErrValidation      = errors.New("invalid data provided")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
