// Package cache provides the document cache used in front of the content store.
package cache

import (
	"context"
	"log/slog"
	"time"

	"linkvault/config"
	"linkvault/internal/domain/lifecycle"
	"linkvault/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "linkvault:doc:"

// noopCache is used when caching is disabled or Redis is unreachable
type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, string, []byte) error         { return nil }
func (noopCache) Close() error                                      { return nil }

// NewNoop returns a cache that never stores anything.
func NewNoop() service.DocumentCache {
	return noopCache{}
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedis wraps a connected Redis client.
func NewRedis(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.DocumentCache {
	return &redisCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached document stored for address.
func (c *redisCache) Get(ctx context.Context, address string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+address).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}

	return data, true, nil
}

// Set caches data for address with the configured TTL.
func (c *redisCache) Set(ctx context.Context, address string, data []byte) error {
	if err := c.client.Set(ctx, keyPrefix+address, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

// Close closes the Redis connection pool.
func (c *redisCache) Close() error {
	return errors.WithStack(c.client.Close())
}

// Params holds dependencies for the DocumentCache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis cache when cache.enabled is set and the server answers a ping,
// otherwise a no-op cache.
func New(params Params) service.DocumentCache {
	cfg := params.Config.Cache
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Document cache disabled")

		return NewNoop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis unreachable, document cache disabled",
			slog.String("addr", cfg.Addr),
			slog.Any("error", err),
		)
		_ = client.Close()

		return NewNoop()
	}

	logger.Info("Redis document cache connected",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
		slog.Duration("ttl", cfg.TTL),
	)

	c := NewRedis(client, cfg.TTL, logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}
