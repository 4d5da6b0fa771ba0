package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count     int
	expiresAt time.Time
}

// MemoryStore implements Store with an in-process map. Suitable for the
// single-process backend and for tests.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewMemoryStore creates an in-memory counter store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock creates an in-memory store with an injected clock
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*window),
		now:     now,
	}
}

// Incr increments the counter for key, resetting to 1 when the previous
// window expired.
func (s *MemoryStore) Incr(ctx context.Context, key string, windowLen time.Duration) (int, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.expiresAt) {
		w = &window{count: 1, expiresAt: now.Add(windowLen)}
		s.windows[key] = w
		return 1, windowLen, nil
	}

	w.count++
	return w.count, w.expiresAt.Sub(now), nil
}
