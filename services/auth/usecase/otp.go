package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/constants"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/pkg/signing"
	"github.com/kumpulapp/kumpul/internal/utils"
)

const otpDigits = 6

// SendCode issues a 6-digit code for the phone number and dispatches it via
// the SMS gateway. The challenge is persisted only after a successful send so
// undelivered codes never leave a phantom challenge behind.
func (u *AuthUsecase) SendCode(ctx context.Context, phoneNumber, clientIP string) (*models.SendCodeResponse, error) {
	phone, ok := utils.NormalizePhoneNumber(phoneNumber, u.cfg.Auth.DefaultCountryCode)
	if !ok {
		return nil, apperr.Validation("invalid phone number")
	}

	window := time.Duration(u.cfg.RateLimit.WindowSecs) * time.Second
	if err := u.consume(ctx, constants.ScopeSendIP, clientIP, u.cfg.RateLimit.SendPerIP, window); err != nil {
		return nil, err
	}
	if err := u.consume(ctx, constants.ScopeSendPhone, phone, u.cfg.RateLimit.SendPerPhone, window); err != nil {
		return nil, err
	}

	now := u.now()

	// Resend cooldown only applies while a live challenge exists
	existing, err := u.challengeRepo.Get(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}
	if existing != nil && now.Before(existing.ExpiresAt) && now.Before(existing.ResendAt) {
		return nil, apperr.RateLimited("please wait before requesting another code", existing.ResendAt.Sub(now))
	}

	code, err := utils.GenerateOTPCode(otpDigits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}
	salt, err := utils.GenerateRandomHex(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	ttl := time.Duration(u.cfg.Auth.OTPTTLSeconds) * time.Second
	cooldown := time.Duration(u.cfg.Auth.ResendCooldownSecs) * time.Second

	if _, err := u.smsGW.SendOTP(ctx, &models.SMSRequest{
		PhoneNumber: phone,
		Code:        code,
		ExpiresIn:   ttl,
	}); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Code == apperr.CodeRateLimited {
			return nil, appErr
		}
		logger.Error("OTP delivery failed",
			logger.String("phone", utils.MaskPhoneNumber(phone)),
			logger.Err(err))
		return nil, apperr.SMSDeliveryFailed("failed to deliver code").WithCause(err)
	}

	challenge := &models.OTPChallenge{
		PhoneNumber: phone,
		CodeHash:    hashCode(u.cfg.Auth.OTPSecret, phone, code, salt),
		Salt:        salt,
		ExpiresAt:   now.Add(ttl),
		ResendAt:    now.Add(cooldown),
	}
	if err := u.challengeRepo.Save(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to save challenge: %w", err)
	}

	logger.Info("OTP code sent",
		logger.String("phone", utils.MaskPhoneNumber(phone)),
		logger.Duration("expires_in", ttl))

	resp := &models.SendCodeResponse{
		ExpiresInMs: ttl.Milliseconds(),
		ResendInMs:  cooldown.Milliseconds(),
	}
	if u.cfg.Auth.ExposeDebugCode {
		resp.DebugCode = code
	}
	return resp, nil
}

// VerifyCode checks a submitted code against the live challenge. On success
// the challenge is consumed, the account is created if missing and a session
// token valid for the configured session TTL is issued.
func (u *AuthUsecase) VerifyCode(ctx context.Context, phoneNumber, code, clientIP string) (*models.AuthResponse, error) {
	phone, ok := utils.NormalizePhoneNumber(phoneNumber, u.cfg.Auth.DefaultCountryCode)
	if !ok {
		return nil, apperr.Validation("invalid phone number")
	}
	if !utils.IsValidOTPCode(code) {
		return nil, apperr.Validation("code must be 6 digits")
	}

	window := time.Duration(u.cfg.RateLimit.WindowSecs) * time.Second
	if err := u.consume(ctx, constants.ScopeVerifyIP, clientIP, u.cfg.RateLimit.VerifyPerIP, window); err != nil {
		return nil, err
	}
	if err := u.consume(ctx, constants.ScopeVerifyPhone, phone, u.cfg.RateLimit.VerifyPerPhone, window); err != nil {
		return nil, err
	}

	now := u.now()

	challenge, err := u.challengeRepo.Get(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}
	if challenge == nil {
		return nil, apperr.InvalidCode("invalid code")
	}
	if now.After(challenge.ExpiresAt) {
		if err := u.challengeRepo.Delete(ctx, phone); err != nil {
			return nil, fmt.Errorf("failed to delete expired challenge: %w", err)
		}
		return nil, apperr.Expired("code expired")
	}
	if challenge.Locked(now) {
		return nil, apperr.RateLimited("too many attempts", challenge.LockedUntil.Sub(now))
	}

	expected := hashCode(u.cfg.Auth.OTPSecret, phone, code, challenge.Salt)
	if !hmac.Equal([]byte(expected), []byte(challenge.CodeHash)) {
		challenge.Attempts++
		if challenge.Attempts >= u.cfg.Auth.VerifyAttemptsMax {
			lockedUntil := now.Add(time.Duration(u.cfg.Auth.LockWindowSecs) * time.Second)
			challenge.LockedUntil = &lockedUntil
			if err := u.challengeRepo.Save(ctx, challenge); err != nil {
				return nil, fmt.Errorf("failed to save challenge: %w", err)
			}
			logger.Warn("Phone locked after repeated failures",
				logger.String("phone", utils.MaskPhoneNumber(phone)),
				logger.Int("attempts", challenge.Attempts))
			return nil, apperr.RateLimited("too many attempts", lockedUntil.Sub(now))
		}
		if err := u.challengeRepo.Save(ctx, challenge); err != nil {
			return nil, fmt.Errorf("failed to save challenge: %w", err)
		}
		remaining := u.cfg.Auth.VerifyAttemptsMax - challenge.Attempts
		return nil, apperr.InvalidCode("invalid code").WithDetail("remainingAttempts", remaining)
	}

	// Challenge is consumed on success
	if err := u.challengeRepo.Delete(ctx, phone); err != nil {
		return nil, fmt.Errorf("failed to delete challenge: %w", err)
	}

	user, err := u.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		user = &models.User{
			ID:          uuid.New().String(),
			PhoneNumber: phone,
			CreatedAt:   now,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		logger.Info("User account created",
			logger.String("user_id", user.ID),
			logger.String("phone", utils.MaskPhoneNumber(phone)))
	}

	sessionTTL := time.Duration(u.cfg.Auth.SessionTTLMinutes) * time.Minute
	token, err := signing.Encode([]byte(u.cfg.Auth.SessionSecret), models.SessionClaims{
		Sub:         user.ID,
		PhoneNumber: user.PhoneNumber,
		Iat:         now.Unix(),
		Exp:         now.Add(sessionTTL).Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// consume applies one rate-limiter check, translating a blocked result into
// the RATE_LIMITED domain error with its wait hint.
func (u *AuthUsecase) consume(ctx context.Context, scope, identifier string, limit int, window time.Duration) error {
	res, err := u.limiter.Consume(ctx, scope+":"+identifier, limit, window)
	if err != nil {
		return fmt.Errorf("rate limiter failed: %w", err)
	}
	if res.Blocked {
		return apperr.RateLimited("too many requests", res.RetryAfter)
	}
	return nil
}

// hashCode computes the one-way challenge hash binding code, phone and salt
func hashCode(secret, phone, code, salt string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s:%s:%s", phone, code, salt)
	return hex.EncodeToString(mac.Sum(nil))
}
