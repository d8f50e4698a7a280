package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lifesource/lifesource-api/internal/api/metrics"
	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// AppointmentHandler handles donation appointment booking.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	DonorID    string    `json:"donor_id"    validate:"required"`
	HospitalID string    `json:"hospital_id" validate:"required"`
	Date       time.Time `json:"date"        validate:"required"`
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled completed"`
}

// Create books a donation appointment.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		DonorID:    req.DonorID,
		HospitalID: req.HospitalID,
		Date:       req.Date,
	})
	if err != nil {
		return err
	}
	metrics.AppointmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, appointment)
}

// ForDonor lists a donor's appointments, most recent first.
//
// @Summary      List appointments for a donor
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        donorId  query     string  true  "Donor id"
// @Success      200      {array}   domain.Appointment
// @Router       /appointments/donor [get]
func (h *AppointmentHandler) ForDonor(c echo.Context) error {
	donorID := c.QueryParam("donorId")
	if donorID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "donorId is required")
	}

	appointments, err := h.service.ForDonor(c.Request().Context(), donorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// ForHospital lists a hospital's appointments, most recent first.
//
// @Summary      List appointments for a hospital
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        hospitalId  query     string  true  "Hospital id"
// @Success      200         {array}   domain.Appointment
// @Router       /appointments/hospital [get]
func (h *AppointmentHandler) ForHospital(c echo.Context) error {
	hospitalID := c.QueryParam("hospitalId")
	if hospitalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hospitalId is required")
	}

	appointments, err := h.service.ForHospital(c.Request().Context(), hospitalID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// UpdateStatus moves an appointment through its lifecycle.
//
// @Summary      Update appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "Appointment id"
// @Param        body  body      updateAppointmentStatusRequest  true  "New status"
// @Success      200   {object}  domain.Appointment
// @Failure      422   {object}  map[string]string
// @Router       /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var req updateAppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.AppointmentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}
