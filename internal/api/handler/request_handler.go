package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifesource/lifesource-api/internal/api/metrics"
	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// RequestHandler handles blood request operations.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type createRequestRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	BloodType   string `json:"blood_type"   validate:"required"`
	Quantity    int    `json:"quantity"     validate:"required,gt=0"`
	Urgency     string `json:"urgency"      validate:"omitempty,oneof=low medium high critical"`
	HospitalID  string `json:"hospital_id"`
}

type updateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted fulfilled cancelled"`
}

// Create opens a blood request.
//
// @Summary      Open a blood request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Request details"
// @Success      201   {object}  domain.BloodRequest
// @Failure      400   {object}  map[string]string
// @Router       /requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.service.Create(c.Request().Context(), ports.CreateRequestInput{
		RecipientID: req.RecipientID,
		BloodType:   req.BloodType,
		Quantity:    req.Quantity,
		Urgency:     req.Urgency,
		HospitalID:  req.HospitalID,
	})
	if err != nil {
		return err
	}
	metrics.RequestsCreatedTotal.WithLabelValues(request.Urgency).Inc()
	return c.JSON(http.StatusCreated, request)
}

// ForRecipient lists a recipient's requests, newest first.
//
// @Summary      List blood requests for a recipient
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        recipientId  query     string  true  "Recipient id"
// @Success      200          {array}   domain.BloodRequest
// @Router       /requests/recipient [get]
func (h *RequestHandler) ForRecipient(c echo.Context) error {
	recipientID := c.QueryParam("recipientId")
	if recipientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "recipientId is required")
	}

	requests, err := h.service.ForRecipient(c.Request().Context(), recipientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// PendingForHospital lists a hospital's pending requests, newest first.
//
// @Summary      List pending blood requests for a hospital
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        hospitalId  query     string  true  "Hospital id"
// @Success      200         {array}   domain.BloodRequest
// @Router       /requests/hospital [get]
func (h *RequestHandler) PendingForHospital(c echo.Context) error {
	hospitalID := c.QueryParam("hospitalId")
	if hospitalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hospitalId is required")
	}

	requests, err := h.service.PendingForHospital(c.Request().Context(), hospitalID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// UpdateStatus moves a blood request through its lifecycle.
//
// @Summary      Update blood request status
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Request id"
// @Param        body  body      updateRequestStatusRequest  true  "New status"
// @Success      200   {object}  domain.BloodRequest
// @Failure      422   {object}  map[string]string
// @Router       /requests/{id}/status [patch]
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	var req updateRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.RequestStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}
