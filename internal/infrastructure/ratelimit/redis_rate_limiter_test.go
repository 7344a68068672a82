package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client)
	ctx := context.Background()

	cfg := Config{PerMinute: 5}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "kiosk-1", cfg)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "kiosk-1", cfg)
	require.NoError(t, err)
	assert.False(t, allowed, "request over the limit should be rejected")
}

func TestRedisLimiter_Allow_KeysAreIndependent(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client)
	ctx := context.Background()

	cfg := Config{PerMinute: 2}

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "kiosk-1", cfg)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "kiosk-1", cfg)
	require.NoError(t, err)
	assert.False(t, allowed)

	// A different caller still has its full budget.
	allowed, err = limiter.Allow(ctx, "kiosk-2", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_Allow_ZeroLimitDisablesWindow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client)
	ctx := context.Background()

	cfg := Config{PerMinute: 0, PerHour: 0}

	for i := 0; i < 20; i++ {
		allowed, err := limiter.Allow(ctx, "kiosk-1", cfg)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisLimiter_Allow_HourWindowBinds(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client)
	ctx := context.Background()

	// Generous minute limit, tight hour limit: the hour window decides.
	cfg := Config{PerMinute: 100, PerHour: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "kiosk-1", cfg)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "kiosk-1", cfg)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisLimiter_Remaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client)
	ctx := context.Background()

	cfg := Config{PerMinute: 10}

	for i := 0; i < 4; i++ {
		_, err := limiter.Allow(ctx, "kiosk-1", cfg)
		require.NoError(t, err)
	}

	count, err := limiter.Remaining(ctx, "kiosk-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestRedisLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client)
	ctx := context.Background()

	cfg := Config{PerMinute: 2}

	for i := 0; i < 2; i++ {
		_, err := limiter.Allow(ctx, "kiosk-1", cfg)
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow(ctx, "kiosk-1", cfg)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "kiosk-1"))

	allowed, err = limiter.Allow(ctx, "kiosk-1", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}
