package http

import (
	"net/http"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/internal/utils"
	"github.com/labstack/echo/v4"
)

// PublicGetEvent handles GET /api/data/public/events/:id. The route is
// unauthenticated; the invitation code and optional token gate access and
// every failure is reported as 404 so event existence never leaks.
func (h *EventHandler) PublicGetEvent(c echo.Context) error {
	event, err := h.eventUC.ValidateInvite(
		c.Request().Context(),
		scope(c),
		c.Param("id"),
		c.QueryParam("code"),
		c.QueryParam("token"),
	)
	if err != nil {
		return utils.NotFoundResponse(c, "event not found")
	}
	return utils.SuccessResponse(c, http.StatusOK, event)
}

// PublicRespond handles POST /api/data/public/events/:id/respond. The invite
// is validated first; only then is the RSVP recorded.
func (h *EventHandler) PublicRespond(c echo.Context) error {
	ctx := c.Request().Context()
	eventID := c.Param("id")

	if _, err := h.eventUC.ValidateInvite(ctx, scope(c), eventID, c.QueryParam("code"), c.QueryParam("token")); err != nil {
		return utils.NotFoundResponse(c, "event not found")
	}

	var req models.RespondRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	event, err := h.eventUC.RespondToInvitation(ctx, scope(c), eventID, &req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, event)
}
