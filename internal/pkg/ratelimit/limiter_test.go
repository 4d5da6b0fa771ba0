package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsume_UnderLimit(t *testing.T) {
	limiter := New(NewMemoryStore())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := limiter.Consume(ctx, "send:ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, res.Blocked)
		assert.Equal(t, i, res.Count)
	}
}

func TestConsume_BlocksOverLimit(t *testing.T) {
	limiter := New(NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := limiter.Consume(ctx, "verify:phone:+49170", 2, time.Minute)
		require.NoError(t, err)
	}

	res, err := limiter.Consume(ctx, "verify:phone:+49170", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Blocked)
	assert.Greater(t, res.RetryAfter, time.Duration(0))
	assert.Equal(t, 3, res.Count)
}

func TestConsume_CounterKeepsIncrementingWhileBlocked(t *testing.T) {
	limiter := New(NewMemoryStore())
	ctx := context.Background()

	var last Result
	for i := 0; i < 5; i++ {
		res, err := limiter.Consume(ctx, "k", 1, time.Minute)
		require.NoError(t, err)
		last = res
	}

	assert.True(t, last.Blocked)
	assert.Equal(t, 5, last.Count)
}

func TestConsume_NewWindowAfterExpiry(t *testing.T) {
	now := time.Now()
	store := NewMemoryStoreWithClock(func() time.Time { return now })
	limiter := New(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.Consume(ctx, "k", 1, time.Minute)
		require.NoError(t, err)
	}

	// Advance past the window: counter resets to 1, not blocked
	now = now.Add(61 * time.Second)
	res, err := limiter.Consume(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Blocked)
	assert.Equal(t, 1, res.Count)
}

func TestConsume_RetryAfterFloor(t *testing.T) {
	now := time.Now()
	store := NewMemoryStoreWithClock(func() time.Time { return now })
	limiter := New(store)
	ctx := context.Background()

	_, err := limiter.Consume(ctx, "k", 0, 100*time.Millisecond)
	require.NoError(t, err)

	res, err := limiter.Consume(ctx, "k", 0, 100*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, res.Blocked)
	assert.GreaterOrEqual(t, res.RetryAfter, time.Second)
}

func TestMemoryStore_ConcurrentIncrements(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, _, err := store.Incr(ctx, "shared", time.Minute)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, _, err := store.Incr(ctx, "shared", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, goroutines+1, count)
}
