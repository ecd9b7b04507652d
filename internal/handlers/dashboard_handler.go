package handlers

import (
	"net/http"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the dashboard stats endpoint
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats returns lead counts per status and the total pipeline value
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.DashboardStatsResponse{Stats: *stats},
	})
}
