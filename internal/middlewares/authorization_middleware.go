package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/responses"
	"restaurant_dashboard/internal/services"
)

// RequireAdmin lets through only users with an admin profile.
// It must run after Authenticate.
func RequireAdmin(admins *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			responses.Abort(c, http.StatusUnauthorized, nil, "Unauthorized")
			return
		}

		isAdmin, err := admins.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			responses.Abort(c, http.StatusInternalServerError, err, "Could not check admin privileges")
			return
		}
		if !isAdmin {
			responses.Abort(c, http.StatusForbidden, nil, "Access denied. Admin privileges required.")
			return
		}

		c.Next()
	}
}
