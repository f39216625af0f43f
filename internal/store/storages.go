package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
)

// Storages bundles every persistence component the services depend on.
type Storages struct {
	UserRepository   UserRepository
	MoodRepository   MoodRepository
	PublicBoardCache PublicBoardCache

	db *DB
}

// NewStorages connects the database selected by cfg.DB, applies migrations,
// and connects the optional public board cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	cache, err := NewPublicBoardCache(ctx, cfg.Cache, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		MoodRepository:   NewMoodRepository(db, log),
		PublicBoardCache: cache,
		db:               db,
	}, nil
}

// Close releases the database and cache connections.
func (s *Storages) Close() error {
	var err error
	if s.PublicBoardCache != nil {
		err = errors.Join(err, s.PublicBoardCache.Close())
	}
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}
	return err
}
