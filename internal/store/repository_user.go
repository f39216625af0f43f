package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/models"
)

// userRepository is the SQL implementation of [UserRepository] on top of the
// "users" table. It works with both backends of [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.ShareEnabled, &user.CreatedAt)
}

// CreateUser persists a new user and returns it with the server-assigned
// fields (UserID, ShareEnabled, CreatedAt).
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.insertUser(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error creating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user with the given username.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := r.db.queries.selectUserByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByUsername", query, args)
}

// FindUserByID retrieves the user with the given id.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := r.db.queries.selectUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := scanUser(r.db.QueryRowContext(ctx, query, args...), &foundUser)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// SetShareEnabled switches the sharing flag of a user.
// Returns [ErrNoUserWasFound] when no row was updated.
func (r *userRepository) SetShareEnabled(ctx context.Context, userID int64, enabled bool) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.updateShareEnabled(userID, enabled)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.SetShareEnabled").
			Int64("user_id", userID).
			Msg("failed to update share flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
