package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/pkg/signing"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "session-test-secret"

func sessionToken(t *testing.T, claims models.SessionClaims) string {
	token, err := signing.Encode([]byte(testSecret), claims)
	require.NoError(t, err)
	return token
}

func runSessionMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/data/state", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := SessionAuthMiddleware(testSecret)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	require.NoError(t, err)
	return rec, reached
}

func TestSessionAuth_ValidToken(t *testing.T) {
	token := sessionToken(t, models.SessionClaims{
		Sub:         "user-1",
		PhoneNumber: "+491701234567",
		Iat:         time.Now().Unix(),
		Exp:         time.Now().Add(time.Hour).Unix(),
	})

	rec, reached := runSessionMiddleware(t, "Bearer "+token)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	rec, reached := runSessionMiddleware(t, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["ok"])
	errBody := response["error"].(map[string]interface{})
	assert.Equal(t, "AUTH_REQUIRED", errBody["code"])
}

func TestSessionAuth_MalformedHeader(t *testing.T) {
	rec, reached := runSessionMiddleware(t, "Token abc")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_BadSignature(t *testing.T) {
	token, err := signing.Encode([]byte("other-secret"), models.SessionClaims{
		Sub: "user-1",
		Exp: time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec, reached := runSessionMiddleware(t, "Bearer "+token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	token := sessionToken(t, models.SessionClaims{
		Sub: "user-1",
		Iat: time.Now().Add(-8 * 24 * time.Hour).Unix(),
		Exp: time.Now().Add(-24 * time.Hour).Unix(),
	})

	rec, reached := runSessionMiddleware(t, "Bearer "+token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_SetsIdentityInContext(t *testing.T) {
	token := sessionToken(t, models.SessionClaims{
		Sub:         "user-42",
		PhoneNumber: "+491701234567",
		Exp:         time.Now().Add(time.Hour).Unix(),
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SessionAuthMiddleware(testSecret)(func(c echo.Context) error {
		assert.Equal(t, "user-42", c.Get(ContextKeyUserID))
		assert.Equal(t, "+491701234567", c.Get(ContextKeyPhone))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
