package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/mood-journal/models"
)

var (
	usersTable = models.User{}.TableName()
	moodsTable = models.Mood{}.TableName()

	userColumns = []string{"id", "username", "password_hash", "share_enabled", "created_at"}
	moodColumns = []string{"id", "user_id", "emoji", "note", "date", "created_at", "updated_at"}

	// the public board never selects the owner or the note
	moodSampleColumns = []string{"emoji", "date"}

	moodOrder = []string{"date ASC", "id ASC"}
)

// queries builds every SQL statement issued by the repositories. The
// placeholder format follows the backend the DB was opened with.
type queries struct {
	builder sq.StatementBuilderType
}

func newQueries(placeholder sq.PlaceholderFormat) queries {
	return queries{builder: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

// ── users ─────────────────────────────────────────────────────────────────────

func (q queries) insertUser(user models.User) (string, []any, error) {
	return q.builder.
		Insert(usersTable).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING id, username, password_hash, share_enabled, created_at").
		ToSql()
}

func (q queries) selectUserByUsername(username string) (string, []any, error) {
	return q.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (q queries) selectUserByID(userID int64) (string, []any, error) {
	return q.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func (q queries) updateShareEnabled(userID int64, enabled bool) (string, []any, error) {
	return q.builder.
		Update(usersTable).
		Set("share_enabled", enabled).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// ── moods ─────────────────────────────────────────────────────────────────────

func (q queries) insertMood(mood models.Mood) (string, []any, error) {
	return q.builder.
		Insert(moodsTable).
		Columns("user_id", "emoji", "note", "date").
		Values(mood.UserID, mood.Emoji, mood.Note, mood.Date).
		Suffix("RETURNING id, user_id, emoji, note, date, created_at, updated_at").
		ToSql()
}

func (q queries) selectMoodByOwnerAndID(ownerID, id int64) (string, []any, error) {
	return q.builder.
		Select(moodColumns...).
		From(moodsTable).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
}

func (q queries) selectMoodsByOwner(ownerID int64) (string, []any, error) {
	return q.builder.
		Select(moodColumns...).
		From(moodsTable).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy(moodOrder...).
		ToSql()
}

func (q queries) selectMoodsByOwnerInRange(ownerID int64, start, end models.Date) (string, []any, error) {
	return q.builder.
		Select(moodColumns...).
		From(moodsTable).
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.GtOrEq{"date": start}).
		Where(sq.LtOrEq{"date": end}).
		OrderBy(moodOrder...).
		ToSql()
}

func (q queries) selectMoodSamplesInRange(start, end models.Date) (string, []any, error) {
	return q.builder.
		Select(moodSampleColumns...).
		From(moodsTable).
		Where(sq.GtOrEq{"date": start}).
		Where(sq.LtOrEq{"date": end}).
		OrderBy(moodOrder...).
		ToSql()
}

// updateMood sets only the non-nil fields of update. The caller must ensure
// at least one field is present.
func (q queries) updateMood(ownerID, id int64, update models.MoodUpdate) (string, []any, error) {
	builder := q.builder.
		Update(moodsTable).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if update.Emoji != nil {
		builder = builder.Set("emoji", *update.Emoji)
	}
	if update.Note != nil {
		builder = builder.Set("note", *update.Note)
	}

	return builder.
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING id, user_id, emoji, note, date, created_at, updated_at").
		ToSql()
}

func (q queries) deleteMood(ownerID, id int64) (string, []any, error) {
	return q.builder.
		Delete(moodsTable).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
}
