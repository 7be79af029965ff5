package handler

import (
	"github.com/gin-gonic/gin"

	"uatf-curricular/backend/internal/service"
	"uatf-curricular/backend/pkg/response"
)

// DashboardHandler
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler creates DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Get counters and recently touched redesigns
// GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.dashboardSvc.Get(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, data)
}
