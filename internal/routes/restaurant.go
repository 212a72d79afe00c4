package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/handlers"
)

type RestaurantRoutes struct {
	handler      *handlers.RestaurantHandler
	draftHandler *handlers.DraftHandler
	guards       Guards
}

func NewRestaurantRoutes(handler *handlers.RestaurantHandler, draftHandler *handlers.DraftHandler, guards Guards) *RestaurantRoutes {
	return &RestaurantRoutes{handler: handler, draftHandler: draftHandler, guards: guards}
}

func (r *RestaurantRoutes) RegisterRoutes(router *gin.RouterGroup) {
	restaurants := router.Group("/restaurants")
	restaurants.Use(r.guards.Authenticate, r.guards.RequireAdmin)
	{
		restaurants.GET("", r.handler.ListRestaurants)
		restaurants.POST("", r.handler.CreateRestaurant)
		restaurants.GET("/:id", r.handler.GetRestaurant)
		restaurants.PUT("/:id", r.handler.UpdateRestaurant)
		restaurants.DELETE("/:id", r.handler.DeleteRestaurant)
		restaurants.POST("/:id/drafts", r.draftHandler.BeginEdit)
	}
}
