package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/models"
)

// moodRepository is the SQL implementation of [MoodRepository] on top of the
// "moods" table.
type moodRepository struct {
	*DB
	logger *logger.Logger
}

// NewMoodRepository constructs a [MoodRepository] backed by db.
func NewMoodRepository(db *DB, logger *logger.Logger) MoodRepository {
	logger.Debug().Msg("creating mood repository")
	return &moodRepository{
		DB:     db,
		logger: logger,
	}
}

func scanMood(row rowScanner, mood *models.Mood) error {
	return row.Scan(&mood.ID, &mood.UserID, &mood.Emoji, &mood.Note, &mood.Date, &mood.CreatedAt, &mood.UpdatedAt)
}

// Create inserts mood and returns the stored row.
func (m *moodRepository) Create(ctx context.Context, mood models.Mood) (models.Mood, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.queries.insertMood(mood)
	if err != nil {
		log.Err(err).Str("func", "moodRepository.Create").Msg("failed to create query")
		return models.Mood{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Mood
	if err := scanMood(m.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).
			Str("func", "moodRepository.Create").
			Int64("user_id", mood.UserID).
			Stringer("classification", m.errorClassificator.Classify(err)).
			Msg("failed to insert mood")
		return models.Mood{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindByOwnerAndID returns the entry id of ownerID or [ErrMoodNotFound].
func (m *moodRepository) FindByOwnerAndID(ctx context.Context, ownerID, id int64) (models.Mood, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.queries.selectMoodByOwnerAndID(ownerID, id)
	if err != nil {
		return models.Mood{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var mood models.Mood
	err = scanMood(m.QueryRowContext(ctx, query, args...), &mood)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Mood{}, ErrMoodNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "moodRepository.FindByOwnerAndID").
			Int64("user_id", ownerID).
			Int64("id", id).
			Msg("failed to scan mood row")
		return models.Mood{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return mood, nil
}

// FindByOwner returns every entry of ownerID.
func (m *moodRepository) FindByOwner(ctx context.Context, ownerID int64) ([]models.Mood, error) {
	query, args, err := m.queries.selectMoodsByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return m.queryMoods(ctx, "moodRepository.FindByOwner", ownerID, query, args)
}

// FindByOwnerInRange returns the entries of ownerID dated within [start, end].
func (m *moodRepository) FindByOwnerInRange(ctx context.Context, ownerID int64, start, end models.Date) ([]models.Mood, error) {
	query, args, err := m.queries.selectMoodsByOwnerInRange(ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return m.queryMoods(ctx, "moodRepository.FindByOwnerInRange", ownerID, query, args)
}

func (m *moodRepository) queryMoods(ctx context.Context, funcName string, ownerID int64, query string, args []any) ([]models.Mood, error) {
	log := logger.FromContext(ctx)

	rows, err := m.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", ownerID).
			Msg("failed to execute query for getting moods")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	moods := make([]models.Mood, 0, 32)
	for rows.Next() {
		var mood models.Mood
		if scanErr := scanMood(rows, &mood); scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Int64("user_id", ownerID).
				Msg("failed to scan mood row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		moods = append(moods, mood)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Int64("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return moods, nil
}

// FindInRange returns the (emoji, date) samples of all owners within [start, end].
func (m *moodRepository) FindInRange(ctx context.Context, start, end models.Date) ([]models.MoodSample, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.queries.selectMoodSamplesInRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "moodRepository.FindInRange").
			Stringer("start", start).
			Stringer("end", end).
			Msg("failed to execute query for getting mood samples")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	samples := make([]models.MoodSample, 0, 64)
	for rows.Next() {
		var sample models.MoodSample
		if scanErr := rows.Scan(&sample.Emoji, &sample.Date); scanErr != nil {
			log.Err(scanErr).Str("func", "moodRepository.FindInRange").Msg("failed to scan mood sample row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		samples = append(samples, sample)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return samples, nil
}

// Update applies the non-nil fields of update to the entry id of ownerID and
// returns the updated row, or [ErrMoodNotFound] when no such entry exists.
func (m *moodRepository) Update(ctx context.Context, ownerID, id int64, update models.MoodUpdate) (models.Mood, error) {
	log := logger.FromContext(ctx)

	if update.Emoji == nil && update.Note == nil {
		return models.Mood{}, ErrEmptyMoodUpdate
	}

	query, args, err := m.queries.updateMood(ownerID, id, update)
	if err != nil {
		return models.Mood{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Mood
	err = scanMood(m.QueryRowContext(ctx, query, args...), &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Mood{}, ErrMoodNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "moodRepository.Update").
			Int64("user_id", ownerID).
			Int64("id", id).
			Msg("failed to update mood")
		return models.Mood{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// Delete removes the entry id of ownerID and returns the number of deleted
// rows (0 or 1).
func (m *moodRepository) Delete(ctx context.Context, ownerID, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.queries.deleteMood(ownerID, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := m.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "moodRepository.Delete").
			Int64("user_id", ownerID).
			Int64("id", id).
			Msg("failed to delete mood")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
