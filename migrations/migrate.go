// Package migrations embeds the SQL schema of the service and applies it with
// goose. Each supported backend has its own directory of migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Backend names accepted by Migrate.
const (
	Postgres = "postgres"
	SQLite   = "sqlite3"
)

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedBackend = errors.New("unsupported migration backend")
)

// Migrate brings the schema of db up to date for the given backend.
func Migrate(db *sql.DB, backend string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dialect, dir, err := dialectFor(backend)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(backend string) (dialect, dir string, err error) {
	switch backend {
	case Postgres:
		return "pgx", "postgres", nil
	case SQLite:
		return "sqlite3", "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedBackend, backend)
	}
}
