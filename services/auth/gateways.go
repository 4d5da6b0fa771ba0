package auth

import (
	"context"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kumpulapp/kumpul/services/auth SMSGateway

// SMSGateway delivers one-time codes through a pluggable provider
type SMSGateway interface {
	SendOTP(ctx context.Context, req *models.SMSRequest) (*models.SMSResult, error)
}
