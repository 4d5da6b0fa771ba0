package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	l, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return l
}

func TestExecute_SucceedsFirstAttempt(t *testing.T) {
	r := New(DefaultConfig(), testLogger(t))

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_RetriesUntilSuccess(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	r := New(cfg, testLogger(t))

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	cfg.BaseDelay = time.Millisecond
	r := New(cfg, testLogger(t))

	calls := 0
	sentinel := errors.New("still failing")
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls) // initial + 2 retries
}

func TestExecute_NonRetryableStopsImmediately(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.RetryableFunc = func(err error) bool { return false }
	r := New(cfg, testLogger(t))

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("terminal")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancellation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Minute // would block without cancellation
	r := New(cfg, testLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Execute(ctx, func(ctx context.Context) error {
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

type hintedError struct {
	hint time.Duration
}

func (e *hintedError) Error() string           { return "throttled" }
func (e *hintedError) WaitHint() time.Duration { return e.hint }

func TestExecute_HonorsWaitHint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRetries = 1
	cfg.BaseDelay = time.Hour // hint must override this
	r := New(cfg, testLogger(t))

	calls := 0
	start := time.Now()
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return &hintedError{hint: 5 * time.Millisecond}
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDelay_CapsAtMaxDelay(t *testing.T) {
	cfg := Config{
		MaxRetries: 10,
		BaseDelay:  300 * time.Millisecond,
		MaxDelay:   3 * time.Second,
		Multiplier: 2.0,
	}
	r := New(cfg, testLogger(t))

	assert.Equal(t, 300*time.Millisecond, r.Delay(0))
	assert.Equal(t, 600*time.Millisecond, r.Delay(1))
	assert.Equal(t, 1200*time.Millisecond, r.Delay(2))
	assert.Equal(t, 2400*time.Millisecond, r.Delay(3))
	assert.Equal(t, 3*time.Second, r.Delay(4))
	assert.Equal(t, 3*time.Second, r.Delay(8))
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 300*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, 3*time.Second, cfg.MaxDelay)
	assert.Equal(t, 2.0, cfg.Multiplier)
	assert.True(t, cfg.RetryableFunc(errors.New("any failure")))
}
