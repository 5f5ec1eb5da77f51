package ratelimit

import (
	"context"

	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/redis"
)

// RedisLimiter is a fixed-window limiter backed by a shared Redis counter,
// for deployments running more than one instance. The window is enforced
// with INCR plus a TTL set when the counter is first created.
type RedisLimiter struct {
	cfg         Config
	redisClient *redis.Client
	log         *logger.Logger
}

// NewRedisLimiter creates a Redis-backed limiter with the given config.
func NewRedisLimiter(cfg Config, redisClient *redis.Client, log *logger.Logger) *RedisLimiter {
	return &RedisLimiter{
		cfg:         cfg,
		redisClient: redisClient,
		log:         log,
	}
}

// Allow implements Limiter. Redis errors fail open: a broken limiter must
// not take the form endpoints down with it.
func (l *RedisLimiter) Allow(ctx context.Context, clientKey string) bool {
	key := l.redisClient.KeyBuilder.KeyRateLimit(clientKey)

	count, err := l.redisClient.Incr(ctx, key)
	if err != nil {
		l.log.WithError(err).Warn("Rate limit counter unavailable, allowing request")
		return true
	}

	if count == 1 {
		if err := l.redisClient.Expire(ctx, key, l.cfg.Window); err != nil {
			l.log.WithError(err).Warn("Failed to set rate limit window TTL")
		}
	}

	return count <= l.cfg.MaxRequests
}
