package ratelimit

import (
	"context"
	"sync"
	"time"
)

// record tracks one client's request count within the current window.
type record struct {
	count       int64
	windowStart time.Time
}

// MemoryLimiter is an in-process fixed-window limiter. State is lost on
// restart, which is acceptable for a single-instance deployment. Records
// are replaced lazily on the first request after window expiry and are
// never evicted otherwise.
type MemoryLimiter struct {
	cfg     Config
	mu      sync.Mutex
	records map[string]*record
	now     func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter with the given config.
func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:     cfg,
		records: make(map[string]*record),
		now:     time.Now,
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, clientKey string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[clientKey]
	if !ok || now.Sub(rec.windowStart) > l.cfg.Window {
		l.records[clientKey] = &record{count: 1, windowStart: now}
		return true
	}

	if rec.count < l.cfg.MaxRequests {
		rec.count++
		return true
	}

	return false
}
