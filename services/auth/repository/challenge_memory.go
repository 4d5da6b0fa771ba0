package repository

import (
	"context"
	"sync"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

// MemoryChallengeRepo stores challenges in an in-process map. Expiry is
// enforced by the usecase; stale records are simply overwritten or deleted.
type MemoryChallengeRepo struct {
	mu         sync.RWMutex
	challenges map[string]models.OTPChallenge
}

// NewMemoryChallengeRepo creates an in-memory challenge repository
func NewMemoryChallengeRepo() *MemoryChallengeRepo {
	return &MemoryChallengeRepo{
		challenges: make(map[string]models.OTPChallenge),
	}
}

// Get retrieves the live challenge for the phone number, or (nil, nil)
func (r *MemoryChallengeRepo) Get(ctx context.Context, phoneNumber string) (*models.OTPChallenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	challenge, ok := r.challenges[phoneNumber]
	if !ok {
		return nil, nil
	}
	// Return a copy so callers cannot mutate the stored record
	clone := challenge
	if challenge.LockedUntil != nil {
		lockedUntil := *challenge.LockedUntil
		clone.LockedUntil = &lockedUntil
	}
	return &clone, nil
}

// Save upserts the challenge
func (r *MemoryChallengeRepo) Save(ctx context.Context, challenge *models.OTPChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.challenges[challenge.PhoneNumber] = *challenge
	return nil
}

// Delete removes the challenge for the phone number
func (r *MemoryChallengeRepo) Delete(ctx context.Context, phoneNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.challenges, phoneNumber)
	return nil
}
