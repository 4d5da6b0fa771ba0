package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/pkg/retry"
	"github.com/kumpulapp/kumpul/internal/utils"
)

// providerError carries the provider's HTTP status and optional wait hint
// through the retry loop.
type providerError struct {
	statusCode int
	retryAfter time.Duration
}

func (e *providerError) Error() string {
	return fmt.Sprintf("sms provider returned status %d", e.statusCode)
}

// WaitHint returns the provider-supplied retry delay, if any
func (e *providerError) WaitHint() time.Duration {
	return e.retryAfter
}

func (e *providerError) retryable() bool {
	return e.statusCode == http.StatusTooManyRequests || e.statusCode >= 500
}

// providerRequest is the JSON body sent to the SMS provider
type providerRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
	Sender  string `json:"sender,omitempty"`
}

// providerResponse is the JSON body returned by the SMS provider
type providerResponse struct {
	MessageID    string `json:"messageId"`
	RetryAfterMs int64  `json:"retryAfterMs,omitempty"`
}

// HTTPGateway delivers codes through a networked SMS provider. Attempts are
// bounded by a per-request timeout; 429 and 5xx responses are retried
// sequentially with exponential backoff, honoring provider retry hints.
type HTTPGateway struct {
	cfg     models.SMSConfig
	client  *http.Client
	retrier *retry.Retrier
	logger  *logger.ZapLogger
}

// NewHTTPGateway creates a provider-backed SMS gateway
func NewHTTPGateway(cfg models.SMSConfig, zapLogger *logger.ZapLogger) *HTTPGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxRetries
	retryCfg.RetryableFunc = func(err error) bool {
		var provErr *providerError
		if errors.As(err, &provErr) {
			return provErr.retryable()
		}
		// Network-level failures (timeouts, resets) are worth retrying
		return true
	}

	return &HTTPGateway{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		retrier: retry.New(retryCfg, zapLogger),
		logger:  zapLogger,
	}
}

// SendOTP dispatches the code through the provider
func (g *HTTPGateway) SendOTP(ctx context.Context, req *models.SMSRequest) (*models.SMSResult, error) {
	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		req.Code, int(req.ExpiresIn.Minutes()))

	body, err := json.Marshal(providerRequest{
		To:      req.PhoneNumber,
		Message: message,
		Sender:  g.cfg.SenderID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider request: %w", err)
	}

	var result *models.SMSResult
	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		res, attemptErr := g.attempt(ctx, body)
		if attemptErr != nil {
			return attemptErr
		}
		result = res
		return nil
	})
	if err != nil {
		g.logger.Warn("SMS delivery failed",
			logger.String("phone", utils.MaskPhoneNumber(req.PhoneNumber)),
			logger.Err(err))

		var provErr *providerError
		if errors.As(err, &provErr) && provErr.statusCode == http.StatusTooManyRequests {
			retryAfter := provErr.retryAfter
			if retryAfter <= 0 {
				retryAfter = 3 * time.Second
			}
			return nil, apperr.RateLimited("sms provider throttled the request", retryAfter)
		}
		return nil, apperr.SMSDeliveryFailed("sms provider unavailable").WithCause(err)
	}

	return result, nil
}

// attempt performs one provider call bounded by the request timeout
func (g *HTTPGateway) attempt(ctx context.Context, body []byte) (*models.SMSResult, error) {
	timeout := g.client.Timeout
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, g.cfg.ProviderURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", g.cfg.APIKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &providerError{
			statusCode: resp.StatusCode,
			retryAfter: retryAfterHint(resp, respBody),
		}
	}

	var parsed providerResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse provider response: %w", err)
	}

	return &models.SMSResult{MessageID: parsed.MessageID}, nil
}

// retryAfterHint extracts the provider's wait hint from the Retry-After
// header (seconds) or the retryAfterMs body field.
func retryAfterHint(resp *http.Response, body []byte) time.Duration {
	if header := resp.Header.Get("Retry-After"); header != "" {
		if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}

	var parsed providerResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.RetryAfterMs > 0 {
		return time.Duration(parsed.RetryAfterMs) * time.Millisecond
	}

	return 0
}
