package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kumpulapp/kumpul/internal/pkg/apperr"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/services/events/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateEvent_HandlerSuccess(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEventUC(ctrl)
	handler := NewEventHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/data/events",
		`{"title": "Team Dinner", "time": "19:30", "date": "2025-06-15T00:00:00Z", "createdBy": "user-1"}`)

	mockUC.EXPECT().
		CreateEvent(gomock.Any(), "default", gomock.Any()).
		Return(&models.Event{ID: "event-1", Title: "Team Dinner"}, nil)

	// Act
	err := handler.CreateEvent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "event-1", data["id"])
}

func TestCreateEvent_HandlerScopeHeader(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEventUC(ctrl)
	handler := NewEventHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/data/events",
		`{"title": "Team Dinner", "time": "19:30", "date": "2025-06-15T00:00:00Z", "createdBy": "user-1"}`)
	c.Request().Header.Set(HeaderAppScope, "tenant-7")

	mockUC.EXPECT().
		CreateEvent(gomock.Any(), "tenant-7", gomock.Any()).
		Return(&models.Event{ID: "event-1"}, nil)

	// Act
	err := handler.CreateEvent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateEvent_HandlerValidationError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEventUC(ctrl)
	handler := NewEventHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/data/events", `{"time": "19:30"}`)

	mockUC.EXPECT().
		CreateEvent(gomock.Any(), "default", gomock.Any()).
		Return(nil, apperr.Validation("title is required"))

	// Act
	err := handler.CreateEvent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	errBody := response["error"].(map[string]interface{})
	assert.Equal(t, apperr.CodeValidation, errBody["code"])
}

func TestGetEvent_HandlerNotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEventUC(ctrl)
	handler := NewEventHandler(mockUC)

	c, rec := newEchoContext(http.MethodGet, "/api/data/events/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	mockUC.EXPECT().
		GetEventByID(gomock.Any(), "default", "missing").
		Return(nil, apperr.NotFound("event not found"))

	// Act
	err := handler.GetEvent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNudge_HandlerSuccess(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEventUC(ctrl)
	handler := NewEventHandler(mockUC)

	c, rec := newEchoContext(http.MethodPost, "/api/data/events/event-1/nudge", "")
	c.SetParamNames("id")
	c.SetParamValues("event-1")

	mockUC.EXPECT().
		SendRSVPNudge(gomock.Any(), "default", "event-1").
		Return(&models.NudgeResponse{PendingCount: 3}, nil)

	// Act
	err := handler.Nudge(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["pendingCount"])
}
