package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/redis"
)

func newTestRedisLimiter(t *testing.T, cfg Config) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	log, err := logger.New("error")
	require.NoError(t, err)

	client, err := redis.NewClient("redis://"+mr.Addr(), "development", log.Logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLimiter(cfg, client, log), mr
}

func TestRedisLimiterAllowsUpToMax(t *testing.T) {
	l, _ := newTestRedisLimiter(t, Config{Window: time.Minute, MaxRequests: 3})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, "1.2.3.4"), "request %d should be allowed", i+1)
	}
	assert.False(t, l.Allow(ctx, "1.2.3.4"))

	// Other clients keep their own counters
	assert.True(t, l.Allow(ctx, "5.6.7.8"))
}

func TestRedisLimiterWindowExpiry(t *testing.T) {
	l, mr := newTestRedisLimiter(t, Config{Window: time.Minute, MaxRequests: 1})
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "1.2.3.4"))
	assert.False(t, l.Allow(ctx, "1.2.3.4"))

	mr.FastForward(61 * time.Second)

	assert.True(t, l.Allow(ctx, "1.2.3.4"))
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	l, mr := newTestRedisLimiter(t, Config{Window: time.Minute, MaxRequests: 1})
	ctx := context.Background()

	mr.Close()

	// With Redis gone the limiter must not reject traffic
	assert.True(t, l.Allow(ctx, "1.2.3.4"))
}
