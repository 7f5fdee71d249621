package handlers

import (
	"net/http"

	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin dashboard HTTP requests
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GetDashboardStats handles GET /admin/stats
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
}
