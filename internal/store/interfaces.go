package store

import (
	"context"
	"time"

	"github.com/MKhiriev/mood-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their sharing flag.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	SetShareEnabled(ctx context.Context, userID int64, enabled bool) error
}

// MoodRepository persists mood entries.
//
// Every owner-facing method takes the owner id and folds it into the query,
// so an entry of another owner behaves exactly like a missing one. Range
// bounds are inclusive and results are ordered by date, then id.
type MoodRepository interface {
	Create(ctx context.Context, mood models.Mood) (models.Mood, error)
	FindByOwnerAndID(ctx context.Context, ownerID, id int64) (models.Mood, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]models.Mood, error)
	FindByOwnerInRange(ctx context.Context, ownerID int64, start, end models.Date) ([]models.Mood, error)
	Update(ctx context.Context, ownerID, id int64, update models.MoodUpdate) (models.Mood, error)
	Delete(ctx context.Context, ownerID, id int64) (int64, error)

	// FindInRange reads across all owners and returns only emoji and date.
	FindInRange(ctx context.Context, start, end models.Date) ([]models.MoodSample, error)
}

// PublicBoardCache keeps computed public boards keyed by their window start.
type PublicBoardCache interface {
	Get(ctx context.Context, windowStart models.Date) (models.PublicBoard, bool, error)
	Set(ctx context.Context, windowStart models.Date, board models.PublicBoard, ttl time.Duration) error
	Invalidate(ctx context.Context) error
	Close() error
}

// ErrorClassificator inspects driver errors of one backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
