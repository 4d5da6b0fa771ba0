package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// keyPrefix namespaces limiter counters in Redis
const keyPrefix = "rate:limit:"

// RedisStore implements Store on Redis. INCR is atomic per key, so concurrent
// requests from different clients never lose counts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed counter store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Incr increments the counter for key. Exactly one caller observes count==1
// per window and arms the expiry for it.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Duration, error) {
	redisKey := keyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("rate limit incr failed: %w", err)
	}

	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate limit expire failed: %w", err)
		}
		return int(count), window, nil
	}

	remaining, err := s.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("rate limit ttl failed: %w", err)
	}
	if remaining < 0 {
		// The key lost its expiry (e.g. the first caller crashed between
		// INCR and PEXPIRE); re-arm the window rather than blocking forever.
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate limit expire failed: %w", err)
		}
		remaining = window
	}

	return int(count), remaining, nil
}
