package sms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	l, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return l
}

func newGateway(t *testing.T, url string, maxRetries int) *HTTPGateway {
	return NewHTTPGateway(models.SMSConfig{
		Provider:       "http",
		ProviderURL:    url,
		APIKey:         "test-key",
		SenderID:       "kumpul",
		MaxRetries:     maxRetries,
		TimeoutSeconds: 2,
	}, testLogger(t))
}

func smsRequest() *models.SMSRequest {
	return &models.SMSRequest{
		PhoneNumber: "+491701234567",
		Code:        "123456",
		ExpiresIn:   5 * time.Minute,
	}
}

func TestHTTPGateway_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		var req providerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "+491701234567", req.To)
		assert.Contains(t, req.Message, "123456")

		_ = json.NewEncoder(w).Encode(providerResponse{MessageID: "msg-1"})
	}))
	defer server.Close()

	gw := newGateway(t, server.URL, 3)
	result, err := gw.SendOTP(context.Background(), smsRequest())

	require.NoError(t, err)
	assert.Equal(t, "msg-1", result.MessageID)
}

func TestHTTPGateway_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(providerResponse{MessageID: "msg-2"})
	}))
	defer server.Close()

	gw := newGateway(t, server.URL, 3)
	result, err := gw.SendOTP(context.Background(), smsRequest())

	require.NoError(t, err)
	assert.Equal(t, "msg-2", result.MessageID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestHTTPGateway_RateLimitExhaustsRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	gw := newGateway(t, server.URL, 1)
	_, err := gw.SendOTP(context.Background(), smsRequest())

	require.Error(t, err)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.CodeRateLimited, appErr.Code)
	assert.Equal(t, time.Second, appErr.RetryAfter)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls)) // initial + 1 retry
}

func TestHTTPGateway_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	gw := newGateway(t, server.URL, 3)
	_, err := gw.SendOTP(context.Background(), smsRequest())

	require.Error(t, err)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.CodeSMSDelivery, appErr.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHTTPGateway_BodyRetryAfterHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(providerResponse{RetryAfterMs: 1500})
	}))
	defer server.Close()

	gw := newGateway(t, server.URL, 0)
	_, err := gw.SendOTP(context.Background(), smsRequest())

	require.Error(t, err)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.CodeRateLimited, appErr.Code)
	assert.Equal(t, 1500*time.Millisecond, appErr.RetryAfter)
}

func TestMockGateway_AlwaysSucceeds(t *testing.T) {
	gw := NewMockGateway(testLogger(t))

	result, err := gw.SendOTP(context.Background(), smsRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, result.MessageID)
}
