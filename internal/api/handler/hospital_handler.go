package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// HospitalHandler handles hospital listing, registration, and verification.
type HospitalHandler struct {
	service ports.HospitalService
}

func NewHospitalHandler(service ports.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

type createHospitalRequest struct {
	Name          string    `json:"name"           validate:"required"`
	Address       string    `json:"address"`
	Coordinates   []float64 `json:"coordinates"    validate:"omitempty,len=2"`
	ContactPhone  string    `json:"contact_phone"`
	DailyCapacity int       `json:"daily_capacity" validate:"omitempty,min=0"`
}

// List returns all hospitals. Public: the map view consumes this.
//
// @Summary      List hospitals
// @Tags         hospitals
// @Produce      json
// @Success      200  {array}  domain.Hospital
// @Router       /hospitals [get]
func (h *HospitalHandler) List(c echo.Context) error {
	hospitals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hospitals)
}

// Create registers a new hospital (unverified).
//
// @Summary      Register a hospital
// @Tags         hospitals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHospitalRequest  true  "Hospital details"
// @Success      201   {object}  domain.Hospital
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /hospitals [post]
func (h *HospitalHandler) Create(c echo.Context) error {
	var req createHospitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hospital, err := h.service.Create(c.Request().Context(), ports.CreateHospitalInput{
		Name:          req.Name,
		Address:       req.Address,
		Coordinates:   req.Coordinates,
		ContactPhone:  req.ContactPhone,
		DailyCapacity: req.DailyCapacity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, hospital)
}

// Verify marks a hospital as verified.
//
// @Summary      Verify a hospital
// @Tags         hospitals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hospital id"
// @Success      200  {object}  domain.Hospital
// @Failure      404  {object}  map[string]string
// @Router       /hospitals/{id}/verify [patch]
func (h *HospitalHandler) Verify(c echo.Context) error {
	hospital, err := h.service.Verify(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hospital)
}
