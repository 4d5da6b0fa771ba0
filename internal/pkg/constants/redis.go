package constants

// Redis key formats
const (
	KeyOTPChallenge = "auth:otp:%s" // Format: auth:otp:{phone_number}

	// Rate limiter scopes, combined with an identifier into "scope:identifier"
	ScopeSendIP      = "send:ip"
	ScopeSendPhone   = "send:phone"
	ScopeVerifyIP    = "verify:ip"
	ScopeVerifyPhone = "verify:phone"
)
