package handler

import (
	"github.com/kumpulapp/kumpul/internal/pkg/health"
	"github.com/kumpulapp/kumpul/services/auth"
	httphandler "github.com/kumpulapp/kumpul/services/auth/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler aggregates the auth service HTTP handlers
type Handler struct {
	authHandler   *httphandler.AuthHandler
	healthService *health.HealthService
	serviceName   string
	version       string
}

// NewHandler creates a new auth handler aggregate
func NewHandler(authUC auth.AuthUC, healthService *health.HealthService, serviceName, version string) *Handler {
	return &Handler{
		authHandler:   httphandler.NewAuthHandler(authUC),
		healthService: healthService,
		serviceName:   serviceName,
		version:       version,
	}
}

// RegisterRoutes registers the auth API routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/auth/health", health.Handler(h.serviceName, h.version, h.healthService))

	// Public routes (no session required)
	e.POST("/api/auth/send-code", h.authHandler.SendCode)
	e.POST("/api/auth/verify-code", h.authHandler.VerifyCode)
}
