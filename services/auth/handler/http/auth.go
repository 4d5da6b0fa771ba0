package http

import (
	"net/http"

	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/utils"
	"github.com/kumpulapp/kumpul/services/auth"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles OTP authentication HTTP requests
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// SendCode handles POST /api/auth/send-code
func (h *AuthHandler) SendCode(c echo.Context) error {
	var req models.SendCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "phoneNumber is required")
	}

	resp, err := h.authUC.SendCode(c.Request().Context(), req.PhoneNumber, c.RealIP())
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp)
}

// VerifyCode handles POST /api/auth/verify-code
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "phoneNumber is required")
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "code is required")
	}

	resp, err := h.authUC.VerifyCode(c.Request().Context(), req.PhoneNumber, req.Code, c.RealIP())
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp)
}

// errorResponse translates domain errors into the envelope, logging anything
// that is not a typed application error.
func (h *AuthHandler) errorResponse(c echo.Context, err error) error {
	appErr := apperr.From(err)
	if appErr.Code == apperr.CodeUnknown {
		logger.Error("Unexpected auth failure",
			logger.String("path", c.Request().URL.Path),
			logger.Err(err))
	}
	return utils.ErrorResponseHandler(c, appErr)
}
