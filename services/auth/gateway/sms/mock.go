package sms

import (
	"context"

	"github.com/google/uuid"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/utils"
)

// MockGateway logs the code and always succeeds. Used outside production.
type MockGateway struct {
	logger *logger.ZapLogger
}

// NewMockGateway creates a mock SMS gateway
func NewMockGateway(zapLogger *logger.ZapLogger) *MockGateway {
	return &MockGateway{logger: zapLogger}
}

// SendOTP logs the delivery and returns a synthetic message id
func (g *MockGateway) SendOTP(ctx context.Context, req *models.SMSRequest) (*models.SMSResult, error) {
	messageID := uuid.New().String()

	g.logger.Info("Mock SMS delivery",
		logger.String("phone", utils.MaskPhoneNumber(req.PhoneNumber)),
		logger.String("code", req.Code),
		logger.Duration("expires_in", req.ExpiresIn),
		logger.String("message_id", messageID))

	return &models.SMSResult{MessageID: messageID}, nil
}
