package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/middleware"
)

// DashboardHandler handles dashboard aggregate requests.
type DashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService portssvc.DashboardSvcFacade) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// registerDashboardRoutes sets up the dashboard routes on the authenticated
// group.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := NewDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.GetStats)
	}
}

// GetStats godoc
// @Summary Dashboard stats
// @Description Returns the document counts behind the dashboard cards.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
