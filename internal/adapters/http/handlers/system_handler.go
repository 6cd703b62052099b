package handlers

import (
	"literaryhub/internal/adapters/http/middleware"
	"literaryhub/internal/core/services"
	"literaryhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SystemHandler handles maintenance endpoints
type SystemHandler struct {
	systemService *services.SystemService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(systemService *services.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Reset reloads the sample catalog and news
// @Summary Reset sample data
// @Description Replaces all books and news with the sample set. Users and borrows are kept. (Admin only)
// @Tags System
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /system/reset [post]
func (h *SystemHandler) Reset(c *fiber.Ctx) error {
	if err := h.systemService.Reset(c.Context(), middleware.CurrentActor(c)); err != nil {
		return respondError(c, err, "system reset")
	}
	return response.Success(c, services.MsgSystemReset)
}
