package repository

import (
	"context"
	"sync"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

// MemoryUserRepo stores user accounts in an in-process map keyed by phone
type MemoryUserRepo struct {
	mu      sync.RWMutex
	byPhone map[string]models.User
}

// NewMemoryUserRepo creates an in-memory user repository
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		byPhone: make(map[string]models.User),
	}
}

// GetByPhone retrieves a user by normalized phone number, or (nil, nil)
func (r *MemoryUserRepo) GetByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byPhone[phoneNumber]
	if !ok {
		return nil, nil
	}
	clone := user
	return &clone, nil
}

// Create inserts a new user account
func (r *MemoryUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPhone[user.PhoneNumber] = *user
	return nil
}
