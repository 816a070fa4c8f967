package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"linkvault/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNoopCache(t *testing.T) {
	c := NewNoop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "tx", []byte("data")))
	data, ok, err := c.Get(ctx, "tx")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
	assert.NoError(t, c.Close())
}

func TestNew_FallsBackToNoop(t *testing.T) {
	tests := []struct {
		name  string
		cache *config.CacheConfig
	}{
		{"not configured", nil},
		{"disabled", &config.CacheConfig{Enabled: false, Addr: "localhost:6379"}},
		{"unreachable", &config.CacheConfig{Enabled: true, Addr: "127.0.0.1:1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Params{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{Cache: tt.cache},
				Logger: discardLogger(),
			})
			assert.IsType(t, noopCache{}, c)
		})
	}
}

// Runs against a real server when REDIS_ADDR is set.
func TestRedisCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	c := NewRedis(client, time.Minute, discardLogger())
	defer c.Close()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing-"+time.Now().String())
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "tx-test", []byte(`{"a":1}`)))
	data, ok, err := c.Get(ctx, "tx-test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(data))
}
