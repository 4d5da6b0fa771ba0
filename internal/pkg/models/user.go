package models

import (
	"time"
)

// User represents an account created lazily on first successful OTP
// verification. Accounts are never deleted by this service.
type User struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
