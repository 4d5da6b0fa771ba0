package auth

import (
	"context"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kumpulapp/kumpul/services/auth ChallengeRepo,UserRepo

// ChallengeRepo stores the live OTP challenge per phone number.
// Get returns (nil, nil) when no challenge exists.
type ChallengeRepo interface {
	Get(ctx context.Context, phoneNumber string) (*models.OTPChallenge, error)
	Save(ctx context.Context, challenge *models.OTPChallenge) error
	Delete(ctx context.Context, phoneNumber string) error
}

// UserRepo stores user accounts keyed by id and unique phone number.
// GetByPhone returns (nil, nil) when no account exists.
type UserRepo interface {
	GetByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
