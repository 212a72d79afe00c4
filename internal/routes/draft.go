package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/handlers"
)

type DraftRoutes struct {
	handler *handlers.DraftHandler
	guards  Guards
}

func NewDraftRoutes(handler *handlers.DraftHandler, guards Guards) *DraftRoutes {
	return &DraftRoutes{handler: handler, guards: guards}
}

func (r *DraftRoutes) RegisterRoutes(router *gin.RouterGroup) {
	drafts := router.Group("/drafts/:draft_id")
	drafts.Use(r.guards.Authenticate, r.guards.RequireAdmin)
	{
		drafts.GET("", r.handler.GetDraft)
		drafts.PATCH("", r.handler.UpdateDraft)
		drafts.DELETE("", r.handler.DiscardDraft)
		drafts.PUT("/logo", r.handler.ReplaceLogo)
		drafts.POST("/images", r.handler.AddMenuImages)
		drafts.DELETE("/images/:index", r.handler.RemoveMenuImage)
		drafts.POST("/save", r.handler.SaveDraft)
	}
}
