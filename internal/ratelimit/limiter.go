// Package ratelimit bounds the rate of requests accepted from a single
// client within a fixed window. It is a coarse abuse deterrent for the
// public form endpoints, not a security boundary.
package ratelimit

import (
	"context"
	"time"
)

// Limiter gates requests per client key.
type Limiter interface {
	// Allow reports whether a request from clientKey should be accepted.
	// It never returns an error; a limiter that cannot reach its backing
	// store fails open.
	Allow(ctx context.Context, clientKey string) bool
}

// Config holds the window parameters shared by all implementations.
type Config struct {
	Window      time.Duration
	MaxRequests int64
}

// DefaultConfig mirrors the values used by the public site.
func DefaultConfig() Config {
	return Config{
		Window:      time.Minute,
		MaxRequests: 5,
	}
}
