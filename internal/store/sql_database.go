package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/migrations"
)

// DB wraps the *sql.DB of one backend together with everything that differs
// between backends: the query builder placeholder format and the driver
// error classification.
type DB struct {
	*sql.DB
	backend            string
	queries            queries
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations of the DB's backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.backend)
}

// Backend returns the migration backend name of the DB.
func (db *DB) Backend() string {
	return db.backend
}

// NewConnectDB opens the database selected by cfg.DSN. DSNs starting with
// "sqlite://" or "file:" open SQLite, everything else is handed to pgx.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("%w: empty DSN", ErrUnsupportedDSN)
	}

	if path, ok := sqliteDSN(cfg.DSN); ok {
		return NewConnectSQLite(ctx, path, log)
	}
	return NewConnectPostgres(ctx, cfg.DSN, log)
}

func sqliteDSN(dsn string) (string, bool) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return strings.TrimPrefix(dsn, "sqlite://"), true
	case strings.HasPrefix(dsn, "file:"):
		return dsn, true
	default:
		return "", false
	}
}
