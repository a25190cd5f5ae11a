package handler

import (
	"github.com/gin-gonic/gin"

	"stockledger/internal/domain"
	"stockledger/internal/service"
)

// AnalyticsHandler serves the reporting endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Analytics handles GET /api/v1/reports/analytics?period=&startDate=&endDate=
// @Summary      Analytics report
// @Description  Period totals, top items, top parties, and the trailing twelve-month trend
// @Tags         reports
// @Produce      json
// @Param        period query string false "Named period" Enums(day, week, month, year) default(month)
// @Param        startDate query string false "Explicit range start (overrides period)"
// @Param        endDate query string false "Explicit range end (defaults to today)"
// @Success      200 {object} APIResponse{data=domain.Analytics}
// @Security     BearerAuth
// @Router       /reports/analytics [get]
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	analytics, err := h.analyticsService.Analytics(
		c.Request.Context(),
		domain.ParsePeriod(c.Query("period")),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, analytics)
}

// DashboardStats handles GET /api/v1/dashboard/stats
// @Summary      Dashboard counters
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.DashboardStats}
// @Security     BearerAuth
// @Router       /dashboard/stats [get]
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	stats, err := h.analyticsService.DashboardStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
