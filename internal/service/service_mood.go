package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mood-journal/internal/aggregation"
	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/internal/store"
	"github.com/MKhiriev/mood-journal/models"
)

// moodService orchestrates access gate, store and aggregation engine.
//
// Owner operations always pass the caller's id into the store query, so a
// foreign entry is never loaded in the first place.
type moodService struct {
	moods  store.MoodRepository
	cache  store.PublicBoardCache
	access AccessService

	rules          []aggregation.Rule
	publicBoardTTL time.Duration

	now func() time.Time

	logger *logger.Logger
}

func NewMoodService(moods store.MoodRepository, cache store.PublicBoardCache, access AccessService, cfg config.Cache, logger *logger.Logger) MoodService {
	return &moodService{
		moods:          moods,
		cache:          cache,
		access:         access,
		rules:          aggregation.DefaultRules,
		publicBoardTTL: cfg.PublicBoardTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// CreateMood stores a new entry for the caller. Without a date the entry is
// recorded for the current day.
func (m *moodService) CreateMood(ctx context.Context, identity models.Identity, req models.CreateMoodRequest) (models.Mood, error) {
	log := logger.FromContext(ctx)

	if identity.UserID <= 0 {
		return models.Mood{}, ErrUnauthenticated
	}

	date := models.DateOf(m.now())
	if req.Date != nil {
		date = *req.Date
	}

	created, err := m.moods.Create(ctx, models.Mood{
		UserID: identity.UserID,
		Emoji:  req.Emoji,
		Note:   req.Note,
		Date:   date,
	})
	if err != nil {
		log.Err(err).Str("func", "moodService.CreateMood").Int64("user_id", identity.UserID).Msg("error creating mood entry")
		return models.Mood{}, fmt.Errorf("error creating mood entry: %w", err)
	}

	m.invalidatePublicBoard(ctx)
	return created, nil
}

// UpdateMood changes emoji and/or note of one of the caller's entries. The
// entry is loaded through the caller's scope and checked by the gate before
// anything is written.
func (m *moodService) UpdateMood(ctx context.Context, identity models.Identity, id int64, update models.MoodUpdate) (models.Mood, error) {
	log := logger.FromContext(ctx)

	existing, err := m.moods.FindByOwnerAndID(ctx, identity.UserID, id)
	if errors.Is(err, store.ErrMoodNotFound) {
		return models.Mood{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "moodService.UpdateMood").Int64("user_id", identity.UserID).Int64("id", id).Msg("error loading mood entry")
		return models.Mood{}, fmt.Errorf("error loading mood entry: %w", err)
	}

	if err = m.access.AuthorizeOwnerAccess(identity, existing.UserID); err != nil {
		log.Error().Str("func", "moodService.UpdateMood").Int64("user_id", identity.UserID).Int64("owner_id", existing.UserID).Msg("store returned a foreign entry")
		return models.Mood{}, err
	}

	updated, err := m.moods.Update(ctx, identity.UserID, id, update)
	switch {
	case errors.Is(err, store.ErrMoodNotFound):
		// deleted between the read and the write
		return models.Mood{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrEmptyMoodUpdate):
		return models.Mood{}, fmt.Errorf("%w: %w", ErrValidation, err)
	case err != nil:
		log.Err(err).Str("func", "moodService.UpdateMood").Int64("user_id", identity.UserID).Int64("id", id).Msg("error updating mood entry")
		return models.Mood{}, fmt.Errorf("error updating mood entry: %w", err)
	}

	m.invalidatePublicBoard(ctx)
	return updated, nil
}

// DeleteMood removes one of the caller's entries.
func (m *moodService) DeleteMood(ctx context.Context, identity models.Identity, id int64) error {
	deleted, err := m.moods.Delete(ctx, identity.UserID, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "moodService.DeleteMood").Int64("user_id", identity.UserID).Int64("id", id).Msg("error deleting mood entry")
		return fmt.Errorf("error deleting mood entry: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	m.invalidatePublicBoard(ctx)
	return nil
}

// MonthlySummary counts the caller's entries of one calendar month.
func (m *moodService) MonthlySummary(ctx context.Context, identity models.Identity, query models.MonthQuery) (models.MonthlySummary, error) {
	first, last := aggregation.MonthRange(query.Year, time.Month(query.Month))

	entries, err := m.moods.FindByOwnerInRange(ctx, identity.UserID, first, last)
	if err != nil {
		return models.MonthlySummary{}, fmt.Errorf("error getting monthly entries: %w", err)
	}

	return aggregation.MonthlySummary(entries), nil
}

func (m *moodService) Stats(ctx context.Context, identity models.Identity) (models.MoodStats, error) {
	entries, err := m.moods.FindByOwner(ctx, identity.UserID)
	if err != nil {
		return models.MoodStats{}, fmt.Errorf("error getting entries for statistics: %w", err)
	}

	return aggregation.FullStats(entries), nil
}

func (m *moodService) Dashboard(ctx context.Context, identity models.Identity) (models.Dashboard, error) {
	entries, err := m.moods.FindByOwner(ctx, identity.UserID)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error getting entries for dashboard: %w", err)
	}

	return aggregation.Dashboard(entries), nil
}

// SharedMoods returns the owner's entries a share token points to, if the
// owner still shares.
func (m *moodService) SharedMoods(ctx context.Context, shareToken string) ([]models.SharedMood, error) {
	ownerID, err := m.access.AuthorizeSharedAccess(ctx, shareToken)
	if err != nil {
		return nil, err
	}

	entries, err := m.moods.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error getting shared entries: %w", err)
	}

	return aggregation.SharedExport(entries), nil
}

// PublicBoard returns the anonymous per-day emoji counts of the last week.
// Boards are cached per window start for publicBoardTTL; cache failures only
// cost a recomputation.
func (m *moodService) PublicBoard(ctx context.Context) (models.PublicBoard, error) {
	log := logger.FromContext(ctx)

	if err := m.access.AuthorizePublicAccess(); err != nil {
		return nil, err
	}

	now := m.now()
	start, end := aggregation.PublicWindow(now)

	board, ok, err := m.cache.Get(ctx, start)
	if err != nil {
		log.Warn().Err(err).Str("func", "moodService.PublicBoard").Msg("public board cache read failed")
	}
	if ok {
		return board, nil
	}

	samples, err := m.moods.FindInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("error getting public samples: %w", err)
	}

	board = aggregation.PublicBoard(samples, now)

	if err = m.cache.Set(ctx, start, board, m.publicBoardTTL); err != nil {
		log.Warn().Err(err).Str("func", "moodService.PublicBoard").Msg("public board cache write failed")
	}

	return board, nil
}

func (m *moodService) Suggest(ctx context.Context, note string) []string {
	return aggregation.Suggest(note, m.rules)
}

func (m *moodService) invalidatePublicBoard(ctx context.Context) {
	if err := m.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "moodService.invalidatePublicBoard").Msg("public board cache invalidation failed")
	}
}
