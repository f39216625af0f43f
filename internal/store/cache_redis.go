package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/mood-journal/internal/config"
	"github.com/MKhiriev/mood-journal/internal/logger"
	"github.com/MKhiriev/mood-journal/models"
)

const publicBoardKeyPrefix = "mood-journal:public-board:"

// redisPublicBoardCache stores public boards as JSON strings, one key per
// window start date.
type redisPublicBoardCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewPublicBoardCache returns a Redis-backed cache when cfg.Addr is set and a
// no-op cache otherwise. The Redis connection is checked with PING.
func NewPublicBoardCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (PublicBoardCache, error) {
	if cfg.Addr == "" {
		log.Debug().Str("func", "NewPublicBoardCache").Msg("public board cache disabled")
		return noopPublicBoardCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewPublicBoardCache").Str("addr", cfg.Addr).Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCache, err)
	}
	log.Info().Str("func", "NewPublicBoardCache").Str("addr", cfg.Addr).Msg("connected to redis successfully")

	return newRedisPublicBoardCache(client, log), nil
}

func newRedisPublicBoardCache(client *redis.Client, log *logger.Logger) *redisPublicBoardCache {
	return &redisPublicBoardCache{client: client, logger: log}
}

func publicBoardKey(windowStart models.Date) string {
	return publicBoardKeyPrefix + windowStart.String()
}

// Get returns the cached board for windowStart. ok is false on a cache miss.
func (c *redisPublicBoardCache) Get(ctx context.Context, windowStart models.Date) (models.PublicBoard, bool, error) {
	raw, err := c.client.Get(ctx, publicBoardKey(windowStart)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrCache, err)
	}

	var board models.PublicBoard
	if err := json.Unmarshal(raw, &board); err != nil {
		return nil, false, fmt.Errorf("%w: decoding cached board: %w", ErrCache, err)
	}

	return board, true, nil
}

// Set stores board under windowStart for ttl.
func (c *redisPublicBoardCache) Set(ctx context.Context, windowStart models.Date, board models.PublicBoard, ttl time.Duration) error {
	raw, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("%w: encoding board: %w", ErrCache, err)
	}

	if err := c.client.Set(ctx, publicBoardKey(windowStart), raw, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCache, err)
	}
	return nil
}

// Invalidate drops every cached board.
func (c *redisPublicBoardCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, publicBoardKeyPrefix+"*", 100).Iterator()

	keys := make([]string, 0, 8)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCache, err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCache, err)
	}
	return nil
}

func (c *redisPublicBoardCache) Close() error {
	return c.client.Close()
}

// noopPublicBoardCache never stores anything; every Get is a miss.
type noopPublicBoardCache struct{}

func (noopPublicBoardCache) Get(context.Context, models.Date) (models.PublicBoard, bool, error) {
	return nil, false, nil
}

func (noopPublicBoardCache) Set(context.Context, models.Date, models.PublicBoard, time.Duration) error {
	return nil
}

func (noopPublicBoardCache) Invalidate(context.Context) error { return nil }

func (noopPublicBoardCache) Close() error { return nil }
