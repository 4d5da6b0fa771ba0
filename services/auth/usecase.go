package auth

import (
	"context"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kumpulapp/kumpul/services/auth AuthUC

// AuthUC represents the OTP authentication usecase interface
type AuthUC interface {
	// SendCode issues and dispatches a one-time code for the phone number
	SendCode(ctx context.Context, phoneNumber, clientIP string) (*models.SendCodeResponse, error)

	// VerifyCode checks a submitted code and mints a session token on success
	VerifyCode(ctx context.Context, phoneNumber, code, clientIP string) (*models.AuthResponse, error)
}
