package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/handlers"
)

// Handlers groups every handler the API mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Restaurant *handlers.RestaurantHandler
	Draft      *handlers.DraftHandler
	Site       *handlers.SiteHandler
	Admin      *handlers.AdminHandler
}

// Guards are the middlewares protecting dashboard routes.
type Guards struct {
	Authenticate gin.HandlerFunc
	RequireAdmin gin.HandlerFunc
}

func RegisterRoutes(router *gin.Engine, h Handlers, g Guards) {
	api := router.Group("/api/v1")

	NewAuthRoutes(h.Auth, g).RegisterRoutes(api)
	NewRestaurantRoutes(h.Restaurant, h.Draft, g).RegisterRoutes(api)
	NewDraftRoutes(h.Draft, g).RegisterRoutes(api)
	NewSiteRoutes(h.Site, g).RegisterRoutes(api)
	NewAdminRoutes(h.Admin, g).RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
