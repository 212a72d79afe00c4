package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/responses"
	"restaurant_dashboard/internal/services"
)

type DraftHandler struct {
	editService *services.EditService
}

func NewDraftHandler(editService *services.EditService) *DraftHandler {
	return &DraftHandler{editService: editService}
}

// BeginEdit handles POST /api/v1/restaurants/:id/drafts
func (h *DraftHandler) BeginEdit(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	draft, err := h.editService.Begin(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Could not start editing")
		return
	}

	responses.Success(c, http.StatusCreated, draft, "Edit draft created")
}

// GetDraft handles GET /api/v1/drafts/:draft_id
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft, err := h.editService.Get(c.Request.Context(), c.Param("draft_id"))
	if err != nil {
		fail(c, err, "Draft not found")
		return
	}

	responses.Success(c, http.StatusOK, draft, "Draft retrieved successfully")
}

// UpdateDraft handles PATCH /api/v1/drafts/:draft_id
func (h *DraftHandler) UpdateDraft(c *gin.Context) {
	var req struct {
		Name   *string `json:"name"`
		DescAr *string `json:"desc_ar"`
		DescEn *string `json:"desc_en"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	draft, err := h.editService.UpdateFields(c.Request.Context(), c.Param("draft_id"), services.DraftFields{
		Name:   req.Name,
		DescAr: req.DescAr,
		DescEn: req.DescEn,
	})
	if err != nil {
		fail(c, err, "Failed to update draft")
		return
	}

	responses.Success(c, http.StatusOK, draft, "Draft updated")
}

// ReplaceLogo handles PUT /api/v1/drafts/:draft_id/logo (multipart form)
func (h *DraftHandler) ReplaceLogo(c *gin.Context) {
	logo, err := formFile(c, "logo")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid multipart form")
		return
	}
	if logo == nil {
		responses.Fail(c, http.StatusBadRequest, nil, "No logo selected")
		return
	}

	draft, err := h.editService.ReplaceLogo(c.Request.Context(), c.Param("draft_id"), *logo)
	if err != nil {
		fail(c, err, "Failed to upload logo")
		return
	}

	responses.Success(c, http.StatusOK, draft, "Logo replaced")
}

// AddMenuImages handles POST /api/v1/drafts/:draft_id/images (multipart form)
func (h *DraftHandler) AddMenuImages(c *gin.Context) {
	images, err := formFiles(c, "images")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid multipart form")
		return
	}

	draft, rejected, err := h.editService.AddMenuImages(c.Request.Context(), c.Param("draft_id"), images)
	if err != nil {
		fail(c, err, "Failed to upload menu images")
		return
	}

	message := "Menu images added"
	if len(rejected) > 0 {
		message = "Some files were rejected"
	}
	responses.Success(c, http.StatusOK, gin.H{"draft": draft, "rejected": rejected}, message)
}

// RemoveMenuImage handles DELETE /api/v1/drafts/:draft_id/images/:index
func (h *DraftHandler) RemoveMenuImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid image index")
		return
	}

	draft, err := h.editService.RemoveMenuImage(c.Request.Context(), c.Param("draft_id"), index)
	if err != nil {
		fail(c, err, "Failed to remove menu image")
		return
	}

	responses.Success(c, http.StatusOK, draft, "Menu image removed")
}

// SaveDraft handles POST /api/v1/drafts/:draft_id/save
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	restaurant, err := h.editService.Save(c.Request.Context(), c.Param("draft_id"))
	if err != nil {
		fail(c, err, "Failed to save restaurant")
		return
	}

	responses.Success(c, http.StatusOK, restaurant, "Restaurant updated successfully")
}

// DiscardDraft handles DELETE /api/v1/drafts/:draft_id
func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.editService.Discard(c.Request.Context(), c.Param("draft_id")); err != nil {
		fail(c, err, "Failed to discard draft")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Draft discarded")
}
