package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/services/auth/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSendCode_HandlerSuccess(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/send-code", `{"phoneNumber": "+6281234567890"}`)

	mockUC.EXPECT().
		SendCode(gomock.Any(), "+6281234567890", gomock.Any()).
		Return(&models.SendCodeResponse{ExpiresInMs: 300_000, ResendInMs: 60_000}, nil)

	// Act
	err := handler.SendCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(300_000), data["expiresInMs"])
	assert.Equal(t, float64(60_000), data["resendInMs"])
}

func TestSendCode_HandlerMissingPhone(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/send-code", `{}`)

	// Act
	err := handler.SendCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["ok"])
	errBody := response["error"].(map[string]interface{})
	assert.Equal(t, apperr.CodeValidation, errBody["code"])
}

func TestSendCode_HandlerRateLimited(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/send-code", `{"phoneNumber": "+6281234567890"}`)

	mockUC.EXPECT().
		SendCode(gomock.Any(), "+6281234567890", gomock.Any()).
		Return(nil, apperr.RateLimited("please wait before requesting another code", 42*time.Second))

	// Act
	err := handler.SendCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	errBody := response["error"].(map[string]interface{})
	assert.Equal(t, apperr.CodeRateLimited, errBody["code"])
	assert.Equal(t, float64(42_000), errBody["retryAfterMs"])
}

func TestSendCode_HandlerUntypedError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/send-code", `{"phoneNumber": "+6281234567890"}`)

	mockUC.EXPECT().
		SendCode(gomock.Any(), "+6281234567890", gomock.Any()).
		Return(nil, errors.New("redis connection refused"))

	// Act
	err := handler.SendCode(c)

	// Assert: internal detail never leaks into the envelope
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	errBody := response["error"].(map[string]interface{})
	assert.Equal(t, apperr.CodeUnknown, errBody["code"])
	assert.NotContains(t, rec.Body.String(), "redis")
}

func TestVerifyCode_HandlerSuccess(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/verify-code", `{"phoneNumber": "+6281234567890", "code": "123456"}`)

	mockUC.EXPECT().
		VerifyCode(gomock.Any(), "+6281234567890", "123456", gomock.Any()).
		Return(&models.AuthResponse{
			Token: "header.signature",
			User:  &models.User{ID: "user-1", PhoneNumber: "+6281234567890"},
		}, nil)

	// Act
	err := handler.VerifyCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "header.signature", data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "user-1", user["id"])
}

func TestVerifyCode_HandlerMissingCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/verify-code", `{"phoneNumber": "+6281234567890"}`)

	// Act
	err := handler.VerifyCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyCode_HandlerInvalidCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/auth/verify-code", `{"phoneNumber": "+6281234567890", "code": "000000"}`)

	mockUC.EXPECT().
		VerifyCode(gomock.Any(), "+6281234567890", "000000", gomock.Any()).
		Return(nil, apperr.InvalidCode("invalid code").WithDetail("remainingAttempts", 3))

	// Act
	err := handler.VerifyCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	errBody := response["error"].(map[string]interface{})
	assert.Equal(t, apperr.CodeInvalidCode, errBody["code"])
	details := errBody["details"].(map[string]interface{})
	assert.Equal(t, float64(3), details["remainingAttempts"])
}
