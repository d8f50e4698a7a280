package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lifesource/lifesource-api/internal/api/metrics"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// InventoryHandler handles blood-unit inventory operations.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type addBloodUnitRequest struct {
	HospitalID string    `json:"hospital_id" validate:"required"`
	BloodType  string    `json:"blood_type"  validate:"required"`
	Units      int       `json:"units"       validate:"required,gt=0"`
	Expiry     time.Time `json:"expiry"      validate:"required"`
}

// Add registers stored blood units.
//
// @Summary      Add blood units
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addBloodUnitRequest  true  "Blood unit batch"
// @Success      201   {object}  domain.BloodUnit
// @Failure      400   {object}  map[string]string
// @Router       /inventory [post]
func (h *InventoryHandler) Add(c echo.Context) error {
	var req addBloodUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	unit, err := h.service.Add(c.Request().Context(), ports.AddBloodUnitInput{
		HospitalID: req.HospitalID,
		BloodType:  req.BloodType,
		Units:      req.Units,
		Expiry:     req.Expiry,
	})
	if err != nil {
		return err
	}
	metrics.BloodUnitsAddedTotal.WithLabelValues(unit.BloodType).Inc()
	return c.JSON(http.StatusCreated, unit)
}

// ByHospital lists a hospital's non-expired units, soonest expiry first.
//
// @Summary      List blood units for a hospital
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        hospitalId  query     string  true  "Hospital id"
// @Success      200         {array}   domain.BloodUnit
// @Router       /inventory/hospital [get]
func (h *InventoryHandler) ByHospital(c echo.Context) error {
	hospitalID := c.QueryParam("hospitalId")
	if hospitalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hospitalId is required")
	}

	units, err := h.service.ByHospital(c.Request().Context(), hospitalID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, units)
}
