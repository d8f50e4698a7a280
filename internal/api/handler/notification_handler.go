package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lifesource/lifesource-api/internal/api/metrics"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// NotificationHandler exposes the broadcast stub.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type broadcastRequest struct {
	Message string `json:"message"`
}

type broadcastResponse struct {
	Message   string `json:"message"`
	Receivers int64  `json:"receivers"`
}

// BroadcastTest publishes a test notification to the broadcast channel.
//
// @Summary      Broadcast a test notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      broadcastRequest  false  "Optional message override"
// @Success      200   {object}  broadcastResponse
// @Failure      403   {object}  map[string]string
// @Router       /notifications/broadcast-test [post]
func (h *NotificationHandler) BroadcastTest(c echo.Context) error {
	var req broadcastRequest
	_ = c.Bind(&req) // body optional
	if req.Message == "" {
		req.Message = "Test notification"
	}

	result, err := h.service.Broadcast(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	metrics.NotificationsBroadcastTotal.Inc()

	return c.JSON(http.StatusOK, broadcastResponse{
		Message:   result.Message,
		Receivers: result.Receivers,
	})
}

// Recent returns the most recently broadcast messages, newest first.
//
// @Summary      Recent notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query    int  false  "Max messages to return (default 100)"
// @Success      200    {array}  string
// @Router       /notifications/recent [get]
func (h *NotificationHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	messages, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []string{}
	}
	return c.JSON(http.StatusOK, messages)
}
