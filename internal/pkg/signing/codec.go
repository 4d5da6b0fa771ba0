// Package signing implements the tamper-evident token codec used for both
// session tokens and invitation tokens. A token is the base64url-encoded
// JSON payload joined by "." with a base64url HMAC-SHA256 signature computed
// over the encoded payload. Session and invitation tokens use different
// secrets so leaking one does not compromise the other.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Encode serializes claims and appends an HMAC-SHA256 signature.
func Encode(secret []byte, claims interface{}) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + sign(secret, encoded), nil
}

// Decode verifies the signature and parses the payload into out.
// It returns false on any malformed structure, signature mismatch or parse
// failure; it never panics.
func Decode(secret []byte, token string, out interface{}) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}

	expected := sign(secret, parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}

	return json.Unmarshal(payload, out) == nil
}

func sign(secret []byte, encodedPayload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
