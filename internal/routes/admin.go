package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/handlers"
)

type AdminRoutes struct {
	handler *handlers.AdminHandler
	guards  Guards
}

func NewAdminRoutes(handler *handlers.AdminHandler, guards Guards) *AdminRoutes {
	return &AdminRoutes{handler: handler, guards: guards}
}

func (r *AdminRoutes) RegisterRoutes(router *gin.RouterGroup) {
	// Own profile: any signed-in user
	profile := router.Group("/profile")
	profile.Use(r.guards.Authenticate)
	{
		profile.GET("", r.handler.GetProfile)
		profile.PATCH("", r.handler.UpdateProfile)
	}

	admin := router.Group("")
	admin.Use(r.guards.Authenticate, r.guards.RequireAdmin)
	{
		admin.POST("/admins", r.handler.CreateAdmin)
		admin.GET("/dashboard/summary", r.handler.Summary)
	}
}
