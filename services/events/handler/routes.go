package handler

import (
	"github.com/kumpulapp/kumpul/services/events"
	httphandler "github.com/kumpulapp/kumpul/services/events/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler aggregates the events service HTTP handlers
type Handler struct {
	eventHandler *httphandler.EventHandler
}

// NewHandler creates a new events handler aggregate
func NewHandler(eventUC events.EventUC) *Handler {
	return &Handler{eventHandler: httphandler.NewEventHandler(eventUC)}
}

// RegisterRoutes registers the data API routes. The session middleware
// guards every private route; public invitation routes are registered on
// their own group without it.
func (h *Handler) RegisterRoutes(e *echo.Echo, sessionAuth echo.MiddlewareFunc) {
	private := e.Group("/api/data", sessionAuth)
	private.GET("/state", h.eventHandler.GetState)
	private.GET("/events", h.eventHandler.ListEvents)
	private.POST("/events", h.eventHandler.CreateEvent)
	private.GET("/events/:id", h.eventHandler.GetEvent)
	private.POST("/events/:id/respond", h.eventHandler.Respond)
	private.POST("/events/:id/reminder", h.eventHandler.ToggleReminder)
	private.POST("/events/:id/nudge", h.eventHandler.Nudge)
	private.POST("/groups", h.eventHandler.CreateGroup)
	private.POST("/groups/:id/members", h.eventHandler.AddMembers)

	public := e.Group("/api/data/public")
	public.GET("/events/:id", h.eventHandler.PublicGetEvent)
	public.POST("/events/:id/respond", h.eventHandler.PublicRespond)
}
