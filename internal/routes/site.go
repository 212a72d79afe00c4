package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/handlers"
)

type SiteRoutes struct {
	handler *handlers.SiteHandler
	guards  Guards
}

func NewSiteRoutes(handler *handlers.SiteHandler, guards Guards) *SiteRoutes {
	return &SiteRoutes{handler: handler, guards: guards}
}

func (r *SiteRoutes) RegisterRoutes(router *gin.RouterGroup) {
	site := router.Group("/site")
	site.Use(r.guards.Authenticate, r.guards.RequireAdmin)
	{
		site.GET("/description", r.handler.GetDescription)
		site.PUT("/description", r.handler.UpdateDescription)
	}
}
