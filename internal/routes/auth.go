package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/handlers"
)

type AuthRoutes struct {
	handler *handlers.AuthHandler
	guards  Guards
}

func NewAuthRoutes(handler *handlers.AuthHandler, guards Guards) *AuthRoutes {
	return &AuthRoutes{handler: handler, guards: guards}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		// Public routes
		auth.POST("/login", r.handler.Login)
		auth.POST("/refresh", r.handler.Refresh)

		// Protected routes
		protected := auth.Group("")
		protected.Use(r.guards.Authenticate)
		protected.GET("/me", r.handler.Me)
		protected.POST("/logout", r.handler.Logout)
	}
}
