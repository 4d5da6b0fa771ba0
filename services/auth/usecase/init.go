package usecase

import (
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/pkg/ratelimit"
	"github.com/kumpulapp/kumpul/services/auth"
)

// AuthUsecase orchestrates OTP send/verify flows
type AuthUsecase struct {
	challengeRepo auth.ChallengeRepo
	userRepo      auth.UserRepo
	smsGW         auth.SMSGateway
	limiter       *ratelimit.Limiter
	cfg           *models.Config
	now           func() time.Time
}

// NewAuthUsecase creates a new auth usecase instance
func NewAuthUsecase(
	challengeRepo auth.ChallengeRepo,
	userRepo auth.UserRepo,
	smsGW auth.SMSGateway,
	limiter *ratelimit.Limiter,
	cfg *models.Config,
) *AuthUsecase {
	return &AuthUsecase{
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		smsGW:         smsGW,
		limiter:       limiter,
		cfg:           cfg,
		now:           time.Now,
	}
}
