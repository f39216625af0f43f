package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/models"
)

func newTestMoodRepo(t *testing.T) (*moodRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	return &moodRepository{DB: newPostgresDB(db, l), logger: l}, mock, db
}

var moodRowColumns = []string{"id", "user_id", "emoji", "note", "date", "created_at", "updated_at"}

func strPtr(s string) *string { return &s }

// ── Create ────────────────────────────────────────────────────────────────────

func TestMoodCreate_Success(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	now := time.Now()
	date := models.NewDate(2024, time.March, 10)
	mood := models.Mood{UserID: 1, Emoji: "😀", Note: strPtr("ok"), Date: date}

	mock.ExpectQuery("INSERT INTO moods \\(user_id,emoji,note,date\\)").
		WithArgs(int64(1), "😀", "ok", "2024-03-10").
		WillReturnRows(sqlmock.NewRows(moodRowColumns).
			AddRow(10, 1, "😀", "ok", "2024-03-10", now, now))

	created, err := repo.Create(context.Background(), mood)

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, date, created.Date)
	require.NotNil(t, created.Note)
	assert.Equal(t, "ok", *created.Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoodCreate_NilNote(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO moods").
		WithArgs(int64(1), "😢", nil, "2024-03-10").
		WillReturnRows(sqlmock.NewRows(moodRowColumns).
			AddRow(11, 1, "😢", nil, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), now, now))

	created, err := repo.Create(context.Background(), models.Mood{UserID: 1, Emoji: "😢", Date: models.NewDate(2024, 3, 10)})

	require.NoError(t, err)
	assert.Nil(t, created.Note)
	assert.Equal(t, "2024-03-10", created.Date.String())
}

func TestMoodCreate_DBError(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO moods").WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), models.Mood{UserID: 1, Emoji: "😀"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── FindByOwnerAndID ──────────────────────────────────────────────────────────

func TestMoodFindByOwnerAndID_ScopedByOwner(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	// squirrel sorts sq.Eq keys, so id comes before user_id
	mock.ExpectQuery("SELECT (.+) FROM moods WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(10), int64(2)).
		WillReturnRows(sqlmock.NewRows(moodRowColumns))

	_, err := repo.FindByOwnerAndID(context.Background(), 2, 10)

	assert.ErrorIs(t, err, ErrMoodNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── FindByOwner / FindByOwnerInRange ──────────────────────────────────────────

func TestMoodFindByOwnerInRange(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM moods WHERE user_id = \\$1 AND date >= \\$2 AND date <= \\$3 ORDER BY date ASC, id ASC").
		WithArgs(int64(1), "2024-02-01", "2024-02-29").
		WillReturnRows(sqlmock.NewRows(moodRowColumns).
			AddRow(1, 1, "😀", nil, "2024-02-01", now, now).
			AddRow(2, 1, "😢", "meh", "2024-02-29", now, now))

	moods, err := repo.FindByOwnerInRange(context.Background(), 1,
		models.NewDate(2024, time.February, 1), models.NewDate(2024, time.February, 29))

	require.NoError(t, err)
	require.Len(t, moods, 2)
	assert.Equal(t, "2024-02-29", moods[1].Date.String())
}

func TestMoodFindByOwner_EmptyIsNonNil(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM moods WHERE user_id = \\$1 ORDER BY").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(moodRowColumns))

	moods, err := repo.FindByOwner(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, moods)
	assert.Empty(t, moods)
}

func TestMoodFindByOwner_QueryError(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM moods").WillReturnError(errors.New("boom"))

	_, err := repo.FindByOwner(context.Background(), 1)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestMoodFindByOwner_ScanError(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM moods").
		WillReturnRows(sqlmock.NewRows(moodRowColumns).
			AddRow(1, 1, "😀", nil, "not-a-date", time.Now(), time.Now()))

	_, err := repo.FindByOwner(context.Background(), 1)

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestMoodFindByOwner_RowsError(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM moods").
		WillReturnRows(sqlmock.NewRows(moodRowColumns).
			AddRow(1, 1, "😀", nil, "2024-01-01", now, now).
			RowError(0, errors.New("row broke")))

	_, err := repo.FindByOwner(context.Background(), 1)

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── projections ───────────────────────────────────────────────────────────────

func TestMoodFindInRange_SelectsOnlyEmojiAndDate(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT emoji, date FROM moods WHERE date >= \\$1 AND date <= \\$2").
		WithArgs("2024-03-03", "2024-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"emoji", "date"}).
			AddRow("😀", "2024-03-03").
			AddRow("😢", "2024-03-10"))

	samples, err := repo.FindInRange(context.Background(),
		models.NewDate(2024, time.March, 3), models.NewDate(2024, time.March, 10))

	require.NoError(t, err)
	assert.Equal(t, []models.MoodSample{
		{Emoji: "😀", Date: models.NewDate(2024, time.March, 3)},
		{Emoji: "😢", Date: models.NewDate(2024, time.March, 10)},
	}, samples)
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestMoodUpdate_OnlyGivenFields(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("UPDATE moods SET updated_at = CURRENT_TIMESTAMP, emoji = \\$1 WHERE id = \\$2 AND user_id = \\$3 RETURNING").
		WithArgs("😊", int64(10), int64(1)).
		WillReturnRows(sqlmock.NewRows(moodRowColumns).
			AddRow(10, 1, "😊", "kept", "2024-03-10", now, now))

	updated, err := repo.Update(context.Background(), 1, 10, models.MoodUpdate{Emoji: strPtr("😊")})

	require.NoError(t, err)
	assert.Equal(t, "😊", updated.Emoji)
	assert.Equal(t, "kept", *updated.Note)
}

func TestMoodUpdate_OtherOwnerIsNotFound(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE moods").
		WithArgs("😊", "n", int64(10), int64(2)).
		WillReturnRows(sqlmock.NewRows(moodRowColumns))

	_, err := repo.Update(context.Background(), 2, 10, models.MoodUpdate{Emoji: strPtr("😊"), Note: strPtr("n")})

	assert.ErrorIs(t, err, ErrMoodNotFound)
}

func TestMoodUpdate_Empty(t *testing.T) {
	repo, _, db := newTestMoodRepo(t)
	defer db.Close()

	_, err := repo.Update(context.Background(), 1, 10, models.MoodUpdate{})

	assert.ErrorIs(t, err, ErrEmptyMoodUpdate)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestMoodDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{"deleted", 1},
		{"missing or foreign", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestMoodRepo(t)
			defer db.Close()

			mock.ExpectExec("DELETE FROM moods WHERE id = \\$1 AND user_id = \\$2").
				WithArgs(int64(10), int64(1)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			n, err := repo.Delete(context.Background(), 1, 10)

			require.NoError(t, err)
			assert.Equal(t, tt.affected, n)
		})
	}
}

func TestMoodDelete_DBError(t *testing.T) {
	repo, mock, db := newTestMoodRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM moods").WillReturnError(errors.New("boom"))

	_, err := repo.Delete(context.Background(), 1, 10)

	assert.ErrorIs(t, err, ErrExecutingStatement)
}
