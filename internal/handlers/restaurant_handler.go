package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/responses"
	"restaurant_dashboard/internal/services"
)

type RestaurantHandler struct {
	restaurantService *services.RestaurantService
}

func NewRestaurantHandler(restaurantService *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// ListRestaurants handles GET /api/v1/restaurants?search=&page=
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.restaurantService.List(c.Request.Context(), services.ListQuery{
		Search: c.Query("search"),
		Page:   page,
	})
	if err != nil {
		fail(c, err, "Failed to retrieve restaurants")
		return
	}

	responses.Success(c, http.StatusOK, result, "Restaurants retrieved successfully")
}

// GetRestaurant handles GET /api/v1/restaurants/:id
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	restaurant, err := h.restaurantService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Restaurant not found")
		return
	}

	responses.Success(c, http.StatusOK, restaurant, "Restaurant retrieved successfully")
}

// CreateRestaurant handles POST /api/v1/restaurants (multipart form)
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	logo, err := formFile(c, "logo")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid multipart form")
		return
	}
	images, err := formFiles(c, "images")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid multipart form")
		return
	}

	result, err := h.restaurantService.Create(c.Request.Context(), services.CreateRestaurantInput{
		Name:       c.PostForm("name"),
		DescAr:     c.PostForm("desc_ar"),
		DescEn:     c.PostForm("desc_en"),
		Logo:       logo,
		MenuImages: images,
	})
	if err != nil {
		_ = c.Error(err)
		status := statusFor(err)
		if status == http.StatusInternalServerError && result.Stage != services.StageCreatingRecord {
			status = http.StatusBadGateway
		}
		responses.FailWithData(c, status, result, err, result.Message)
		return
	}

	responses.Success(c, http.StatusCreated, result, result.Message)
}

// UpdateRestaurant handles PUT /api/v1/restaurants/:id
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name      string   `json:"name"       binding:"required"`
		DescAr    string   `json:"desc_ar"`
		DescEn    string   `json:"desc_en"`
		Logo      string   `json:"logo"`
		LogoKey   string   `json:"logo_key"`
		Images    []string `json:"images"`
		ImageKeys []string `json:"image_keys"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	restaurant, err := h.restaurantService.Update(c.Request.Context(), id, services.UpdateRestaurantInput{
		Name:      req.Name,
		DescAr:    req.DescAr,
		DescEn:    req.DescEn,
		Logo:      req.Logo,
		LogoKey:   req.LogoKey,
		Images:    req.Images,
		ImageKeys: req.ImageKeys,
	})
	if err != nil {
		fail(c, err, "Failed to update restaurant")
		return
	}

	responses.Success(c, http.StatusOK, restaurant, "Restaurant updated successfully")
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/:id?confirm=true
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	result, err := h.restaurantService.Delete(c.Request.Context(), id, confirmed)
	if err != nil {
		fail(c, err, "Failed to delete restaurant")
		return
	}

	message := "Restaurant deleted successfully"
	if len(result.CleanupFailures) > 0 {
		message = "Restaurant deleted; some stored images could not be removed"
	}
	responses.Success(c, http.StatusOK, result, message)
}
