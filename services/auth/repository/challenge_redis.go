package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/kumpulapp/kumpul/internal/pkg/constants"
	"github.com/kumpulapp/kumpul/internal/pkg/database"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

// ttlGrace keeps the record alive slightly past its logical expiry so the
// verify flow can still observe it and report CODE_EXPIRED instead of
// INVALID_CODE.
const ttlGrace = time.Minute

// RedisChallengeRepo stores OTP challenges in Redis with a TTL covering both
// the code validity and any lockout window.
type RedisChallengeRepo struct {
	client *database.RedisClient
}

// NewRedisChallengeRepo creates a Redis-backed challenge repository
func NewRedisChallengeRepo(client *database.RedisClient) *RedisChallengeRepo {
	return &RedisChallengeRepo{client: client}
}

func challengeKey(phoneNumber string) string {
	return fmt.Sprintf(constants.KeyOTPChallenge, phoneNumber)
}

// Get retrieves the live challenge for the phone number, or (nil, nil)
func (r *RedisChallengeRepo) Get(ctx context.Context, phoneNumber string) (*models.OTPChallenge, error) {
	data, err := r.client.Get(ctx, challengeKey(phoneNumber))
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var challenge models.OTPChallenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}
	return &challenge, nil
}

// Save upserts the challenge. The record TTL covers the later of the code
// expiry and the lockout expiry.
func (r *RedisChallengeRepo) Save(ctx context.Context, challenge *models.OTPChallenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	until := challenge.ExpiresAt
	if challenge.LockedUntil != nil && challenge.LockedUntil.After(until) {
		until = *challenge.LockedUntil
	}
	ttl := time.Until(until) + ttlGrace
	if ttl <= 0 {
		ttl = ttlGrace
	}

	if err := r.client.Set(ctx, challengeKey(challenge.PhoneNumber), data, ttl); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}
	return nil
}

// Delete removes the challenge for the phone number
func (r *RedisChallengeRepo) Delete(ctx context.Context, phoneNumber string) error {
	if err := r.client.Delete(ctx, challengeKey(phoneNumber)); err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	return nil
}
