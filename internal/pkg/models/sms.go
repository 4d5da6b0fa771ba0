package models

import (
	"time"
)

// SMSRequest represents a one-time code delivery request
type SMSRequest struct {
	PhoneNumber string        `json:"phone_number"`
	Code        string        `json:"code"`
	ExpiresIn   time.Duration `json:"expires_in"`
}

// SMSResult represents a successful delivery receipt
type SMSResult struct {
	MessageID string `json:"message_id"`
}
