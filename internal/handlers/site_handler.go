package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/responses"
	"restaurant_dashboard/internal/services"
)

type SiteHandler struct {
	descriptionService *services.DescriptionService
}

func NewSiteHandler(descriptionService *services.DescriptionService) *SiteHandler {
	return &SiteHandler{descriptionService: descriptionService}
}

// GetDescription handles GET /api/v1/site/description
func (h *SiteHandler) GetDescription(c *gin.Context) {
	description, err := h.descriptionService.Get(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to load the site description")
		return
	}

	responses.Success(c, http.StatusOK, description, "Description retrieved successfully")
}

// UpdateDescription handles PUT /api/v1/site/description
func (h *SiteHandler) UpdateDescription(c *gin.Context) {
	var req struct {
		HeaderOneAr string `json:"header_one_ar"`
		HeaderOneEn string `json:"header_one_en"`
		HeaderTwoAr string `json:"header_two_ar"`
		HeaderTwoEn string `json:"header_two_en"`
		ParagraphAr string `json:"paragraph_ar"`
		ParagraphEn string `json:"paragraph_en"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	description, err := h.descriptionService.Update(c.Request.Context(), &models.SiteDescription{
		HeaderOneAr: req.HeaderOneAr,
		HeaderOneEn: req.HeaderOneEn,
		HeaderTwoAr: req.HeaderTwoAr,
		HeaderTwoEn: req.HeaderTwoEn,
		ParagraphAr: req.ParagraphAr,
		ParagraphEn: req.ParagraphEn,
	})
	if err != nil {
		fail(c, err, "Failed to update the site description")
		return
	}

	responses.Success(c, http.StatusOK, description, "Description updated successfully")
}
