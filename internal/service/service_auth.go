package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/store"
	"github.com/MKhiriev/mood-journal/internal/utils"
	"github.com/MKhiriev/mood-journal/models"
)

// authService is the concrete implementation of AuthService.
// It stores bcrypt password hashes through a UserRepository and answers
// every successful registration or login with a session token.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	tokens TokenService

	// bcryptCost is the work factor of newly stored hashes.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account and returns its first session token.
//
// Returns:
//   - ErrUsernameTaken if the username already exists.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(creds.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("error hashing password")
		return models.Token{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Username: creds.Username, PasswordHash: hash})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		log.Info().Str("func", "authService.Register").Str("username", creds.Username).Msg("username already taken")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUsernameTaken, err)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Str("username", creds.Username).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.tokens.IssueSession(ctx, user.UserID)
}

// Login checks creds and returns a session token.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "authService.Login").Str("username", creds.Username).Msg("unknown username")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("username", creds.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	err = utils.ComparePassword(user.PasswordHash, creds.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Info().Str("func", "authService.Login").Int64("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("user_id", user.UserID).Msg("error comparing password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.tokens.IssueSession(ctx, user.UserID)
}
