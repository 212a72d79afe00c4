package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/responses"
	"restaurant_dashboard/internal/services"
)

type AdminHandler struct {
	adminService     *services.AdminService
	dashboardService *services.DashboardService
}

func NewAdminHandler(adminService *services.AdminService, dashboardService *services.DashboardService) *AdminHandler {
	return &AdminHandler{adminService: adminService, dashboardService: dashboardService}
}

// GetProfile handles GET /api/v1/profile
func (h *AdminHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.adminService.Profile(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "Failed to retrieve profile")
		return
	}

	responses.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateProfile handles PATCH /api/v1/profile
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	profile, err := h.adminService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err, "Failed to update profile")
		return
	}

	responses.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// CreateAdmin handles POST /api/v1/admins
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req services.CreateAdminInput
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	profile, err := h.adminService.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Could not create admin")
		return
	}

	responses.Success(c, http.StatusCreated, profile, "Admin created successfully")
}

// Summary handles GET /api/v1/dashboard/summary
func (h *AdminHandler) Summary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "Failed to load dashboard")
		return
	}

	responses.Success(c, http.StatusOK, summary, "Dashboard loaded")
}
