// Package ratelimit implements sliding-window request counters keyed by
// operation and identifier (e.g. "send:ip:203.0.113.4"). Counters keep
// incrementing while blocked; a fresh window starts only after the previous
// one expires.
package ratelimit

import (
	"context"
	"time"
)

// minRetryAfter is the floor for the wait hint returned to blocked callers
const minRetryAfter = time.Second

// Store persists window counters. Incr atomically increments the counter for
// key, starting a new window of the given length when none is live, and
// returns the incremented count together with the remaining window duration.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int, remaining time.Duration, err error)
}

// Result reports the outcome of consuming one request against a limit
type Result struct {
	Blocked    bool
	RetryAfter time.Duration
	Count      int
}

// Limiter applies limits on top of a Store
type Limiter struct {
	store Store
}

// New creates a limiter backed by the given store
func New(store Store) *Limiter {
	return &Limiter{store: store}
}

// Consume counts one request for key and reports whether the caller exceeded
// limit within the current window. The counter is incremented even when the
// caller is already blocked.
func (l *Limiter) Consume(ctx context.Context, key string, limit int, window time.Duration) (Result, error) {
	count, remaining, err := l.store.Incr(ctx, key, window)
	if err != nil {
		return Result{}, err
	}

	if count > limit {
		retryAfter := remaining
		if retryAfter < minRetryAfter {
			retryAfter = minRetryAfter
		}
		return Result{Blocked: true, RetryAfter: retryAfter, Count: count}, nil
	}

	return Result{Count: count}, nil
}
