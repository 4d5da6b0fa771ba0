package models

import (
	"time"
)

// OTPChallenge represents a live one-time passcode challenge for a phone
// number. At most one challenge exists per normalized phone number: it is
// created on send, deleted on successful verify or expiry detection, and
// mutated on failed verify.
type OTPChallenge struct {
	PhoneNumber string     `json:"phone_number" db:"phone_number"`
	CodeHash    string     `json:"code_hash" db:"code_hash"`
	Salt        string     `json:"salt" db:"salt"`
	ExpiresAt   time.Time  `json:"expires_at" db:"expires_at"`
	ResendAt    time.Time  `json:"resend_at" db:"resend_at"`
	Attempts    int        `json:"attempts" db:"attempts"`
	LockedUntil *time.Time `json:"locked_until,omitempty" db:"locked_until"`
}

// Locked reports whether the challenge is locked out at the given instant.
func (c *OTPChallenge) Locked(now time.Time) bool {
	return c.LockedUntil != nil && now.Before(*c.LockedUntil)
}

// SendCodeRequest represents a request to send an OTP code
type SendCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// SendCodeResponse represents the response after dispatching an OTP code
type SendCodeResponse struct {
	ExpiresInMs int64  `json:"expiresInMs"`
	ResendInMs  int64  `json:"resendInMs"`
	DebugCode   string `json:"debugCode,omitempty"`
}

// VerifyCodeRequest represents a request to verify an OTP code
type VerifyCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Code        string `json:"code" validate:"required"`
}

// AuthResponse represents the response after successful verification
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// SessionClaims is the signed, self-contained session token payload.
// Validity is fully determined by the signature and Exp.
type SessionClaims struct {
	Sub         string `json:"sub"`
	PhoneNumber string `json:"phoneNumber"`
	Iat         int64  `json:"iat"`
	Exp         int64  `json:"exp"`
}
