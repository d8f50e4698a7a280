package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// AdminHandler exposes administrative maintenance endpoints.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RebuildReports recomputes the per-collection counts.
//
// @Summary      Rebuild reports
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ReportCounts
// @Failure      403  {object}  map[string]string
// @Router       /admin/rebuild-reports [post]
func (h *AdminHandler) RebuildReports(c echo.Context) error {
	counts, err := h.service.RebuildReports(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}
