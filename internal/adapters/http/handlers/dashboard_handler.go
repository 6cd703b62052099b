package handlers

import (
	"literaryhub/internal/core/services"
	"literaryhub/internal/pkg/pagination"
	"literaryhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the staff dashboard and activity log
type DashboardHandler struct {
	dashboardService *services.DashboardService
	activityService  *services.ActivityService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService, activityService *services.ActivityService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		activityService:  activityService,
	}
}

// GetAdminDashboard returns library counters
// @Summary Admin Dashboard
// @Description Users, books, news and borrow counters (Admin/Librarian)
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.AdminDashboardData
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /admin/stats [get]
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAdminDashboard(c.Context())
	if err != nil {
		return respondError(c, err, "admin dashboard")
	}
	return response.OK(c, data)
}

// ListLogs returns the activity log
// @Summary Activity log
// @Description Newest first (Admin only)
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} response.Message
// @Router /admin/logs [get]
func (h *DashboardHandler) ListLogs(c *fiber.Ctx) error {
	result, err := h.activityService.List(c.Context(), pagination.GetParams(c))
	if err != nil {
		return respondError(c, err, "list logs")
	}
	return response.OK(c, result)
}
