package middleware

import (
	"strings"
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/pkg/signing"
	"github.com/kumpulapp/kumpul/internal/utils"
	"github.com/labstack/echo/v4"
)

// Context keys set by SessionAuthMiddleware
const (
	ContextKeyUserID = "user_id"
	ContextKeyPhone  = "phone_number"
)

// SessionAuthMiddleware guards routes behind a verified session token.
// A missing, malformed, badly signed or expired token yields 401 AUTH_REQUIRED.
func SessionAuthMiddleware(sessionSecret string) echo.MiddlewareFunc {
	secret := []byte(sessionSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "invalid authorization format")
			}

			var claims models.SessionClaims
			if !signing.Decode(secret, parts[1], &claims) {
				return utils.UnauthorizedResponse(c, "invalid token")
			}

			if claims.Exp <= time.Now().Unix() {
				return utils.UnauthorizedResponse(c, "token expired")
			}

			if claims.Sub == "" {
				return utils.UnauthorizedResponse(c, "invalid token: missing subject")
			}

			// Set the user identity in the context
			c.Set(ContextKeyUserID, claims.Sub)
			c.Set(ContextKeyPhone, claims.PhoneNumber)

			return next(c)
		}
	}
}
