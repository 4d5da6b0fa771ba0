package utils

import (
	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/labstack/echo/v4"
)

// Response represents a successful API response
type Response struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data,omitempty"`
}

// ErrorBody carries the error detail inside an error response
type ErrorBody struct {
	Code         string                 `json:"code"`
	Message      string                 `json:"message"`
	RetryAfterMs int64                  `json:"retryAfterMs,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse represents an error API response
type ErrorResponse struct {
	OK    bool      `json:"ok"`
	Error ErrorBody `json:"error"`
}

// SuccessResponse sends a success envelope with data
func SuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, Response{
		OK:   true,
		Data: data,
	})
}

// ErrorResponseHandler sends an error envelope for a typed application error
func ErrorResponseHandler(c echo.Context, appErr *apperr.Error) error {
	body := ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}
	if appErr.RetryAfter > 0 {
		body.RetryAfterMs = appErr.RetryAfter.Milliseconds()
	}
	return c.JSON(appErr.Status, ErrorResponse{OK: false, Error: body})
}

// DomainErrorResponse translates any domain error to the envelope. Untyped
// errors are logged upstream and surfaced as UNKNOWN_ERROR without detail.
func DomainErrorResponse(c echo.Context, err error) error {
	return ErrorResponseHandler(c, apperr.From(err))
}

// BadRequestResponse sends a 400 VALIDATION_ERROR response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, apperr.Validation(message))
}

// UnauthorizedResponse sends a 401 AUTH_REQUIRED response
func UnauthorizedResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, apperr.AuthRequired(message))
}

// NotFoundResponse sends a 404 NOT_FOUND response
func NotFoundResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, apperr.NotFound(message))
}

// InternalServerErrorResponse sends a 500 UNKNOWN_ERROR response
func InternalServerErrorResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, apperr.Unknown(message))
}
