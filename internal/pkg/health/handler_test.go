package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func newHealthTestService(t *testing.T) *HealthService {
	l, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return NewHealthService(l)
}

func performHealthRequest(t *testing.T, svc *HealthService) (*httptest.ResponseRecorder, map[string]interface{}) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Handler("kumpul-api", "1.2.3", svc)(c)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealthHandler_HealthyWrapsEnvelope(t *testing.T) {
	// Arrange
	svc := newHealthTestService(t)
	svc.AddChecker("postgres", stubChecker{})

	// Act
	rec, body := performHealthRequest(t, svc)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "kumpul-api", data["service"])
	assert.Equal(t, "1.2.3", data["version"])

	deps := data["dependencies"].(map[string]interface{})
	postgres := deps["postgres"].(map[string]interface{})
	assert.Equal(t, "healthy", postgres["status"])
}

func TestHealthHandler_UnhealthyDependencyIs503Envelope(t *testing.T) {
	// Arrange
	svc := newHealthTestService(t)
	svc.AddChecker("postgres", stubChecker{})
	svc.AddChecker("redis", stubChecker{err: errors.New("connection refused")})

	// Act
	rec, body := performHealthRequest(t, svc)

	// Assert
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, false, body["ok"])

	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "UNKNOWN_ERROR", errBody["code"])

	details := errBody["details"].(map[string]interface{})
	healthDetail := details["health"].(map[string]interface{})
	assert.Equal(t, "unhealthy", healthDetail["status"])

	deps := healthDetail["dependencies"].(map[string]interface{})
	redis := deps["redis"].(map[string]interface{})
	assert.Equal(t, "unhealthy", redis["status"])
	assert.Equal(t, "connection refused", redis["error"])
}
