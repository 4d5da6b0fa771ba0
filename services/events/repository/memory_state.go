package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

// scopeEntry is one scope's state plus the mutex serializing its writers
type scopeEntry struct {
	mu    sync.Mutex
	state *models.AppState
}

// MemoryStateStore is the single-process StateStore backend. Mutations run
// against a deep copy under a per-scope mutex and are swapped in only when
// the mutation function succeeds.
type MemoryStateStore struct {
	mu     sync.Mutex
	scopes map[string]*scopeEntry
	now    func() time.Time
}

// NewMemoryStateStore creates a new in-memory state store
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		scopes: make(map[string]*scopeEntry),
		now:    time.Now,
	}
}

// entry returns the scope entry, seeding it on first use
func (s *MemoryStateStore) entry(scope string) *scopeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.scopes[scope]
	if !ok {
		e = &scopeEntry{state: seedAppState(s.now())}
		s.scopes[scope] = e
	}
	return e
}

// Mutate applies fn to a deep copy of the scope state and swaps the copy in
// when fn succeeds. A failing fn leaves the stored state untouched.
func (s *MemoryStateStore) Mutate(ctx context.Context, scope string, fn func(*models.AppState) (interface{}, error)) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := s.entry(scope)
	e.mu.Lock()
	defer e.mu.Unlock()

	working, err := cloneState(e.state)
	if err != nil {
		return nil, err
	}

	result, err := fn(working)
	if err != nil {
		return nil, err
	}

	e.state = working
	return result, nil
}

// Read returns a snapshot copy of the scope state
func (s *MemoryStateStore) Read(ctx context.Context, scope string) (*models.AppState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := s.entry(scope)
	e.mu.Lock()
	defer e.mu.Unlock()

	return cloneState(e.state)
}

// cloneState deep-copies state through a JSON round trip
func cloneState(state *models.AppState) (*models.AppState, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to clone state: %w", err)
	}
	clone := &models.AppState{}
	if err := json.Unmarshal(raw, clone); err != nil {
		return nil, fmt.Errorf("failed to clone state: %w", err)
	}
	return clone, nil
}
