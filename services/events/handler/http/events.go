package http

import (
	"net/http"

	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/utils"
	"github.com/kumpulapp/kumpul/services/events"
	"github.com/labstack/echo/v4"
)

// HeaderAppScope selects the data partition a request operates on
const HeaderAppScope = "X-App-Scope"

const defaultScope = "default"

// EventHandler handles event and group HTTP requests
type EventHandler struct {
	eventUC events.EventUC
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUC events.EventUC) *EventHandler {
	return &EventHandler{eventUC: eventUC}
}

// scope resolves the data partition from the request headers
func scope(c echo.Context) string {
	if s := c.Request().Header.Get(HeaderAppScope); s != "" {
		return s
	}
	return defaultScope
}

// GetState handles GET /api/data/state
func (h *EventHandler) GetState(c echo.Context) error {
	state, err := h.eventUC.ListState(c.Request().Context(), scope(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, state)
}

// ListEvents handles GET /api/data/events
func (h *EventHandler) ListEvents(c echo.Context) error {
	state, err := h.eventUC.ListState(c.Request().Context(), scope(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, state.Events)
}

// GetEvent handles GET /api/data/events/:id
func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.eventUC.GetEventByID(c.Request().Context(), scope(c), c.Param("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, event)
}

// CreateEvent handles POST /api/data/events
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), scope(c), &req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, event)
}

// Respond handles POST /api/data/events/:id/respond
func (h *EventHandler) Respond(c echo.Context) error {
	var req models.RespondRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	event, err := h.eventUC.RespondToInvitation(c.Request().Context(), scope(c), c.Param("id"), &req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, event)
}

// ToggleReminder handles POST /api/data/events/:id/reminder
func (h *EventHandler) ToggleReminder(c echo.Context) error {
	var req models.ToggleReminderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	event, err := h.eventUC.ToggleEventReminder(c.Request().Context(), scope(c), c.Param("id"), req.Enabled)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, event)
}

// Nudge handles POST /api/data/events/:id/nudge
func (h *EventHandler) Nudge(c echo.Context) error {
	resp, err := h.eventUC.SendRSVPNudge(c.Request().Context(), scope(c), c.Param("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, resp)
}

// CreateGroup handles POST /api/data/groups
func (h *EventHandler) CreateGroup(c echo.Context) error {
	var req models.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	group, err := h.eventUC.CreateGroup(c.Request().Context(), scope(c), &req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, group)
}

// AddMembers handles POST /api/data/groups/:id/members
func (h *EventHandler) AddMembers(c echo.Context) error {
	var req models.AddMembersRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	group, err := h.eventUC.AddMembersToGroup(c.Request().Context(), scope(c), c.Param("id"), req.Members)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, group)
}

func (h *EventHandler) errorResponse(c echo.Context, err error) error {
	appErr := apperr.From(err)
	if appErr.Code == apperr.CodeUnknown {
		logger.Error("Unexpected data operation failure",
			logger.String("path", c.Request().URL.Path),
			logger.Err(err))
	}
	return utils.ErrorResponseHandler(c, appErr)
}
