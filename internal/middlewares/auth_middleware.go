package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant_dashboard/internal/responses"
	"restaurant_dashboard/internal/services"
)

const (
	ContextUserID    = "userId"
	ContextSessionID = "sessionId"

	AccessTokenCookie = "access_token"
)

// Authenticate requires a live access token from the Authorization header
// or the access_token cookie. Browsers are redirected to signInPath, API
// clients get a 401.
func Authenticate(auth *services.AuthService, signInPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			reject(c, signInPath, nil, "Missing access token")
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if services.IsSessionError(err) {
				reject(c, signInPath, err, "Invalid or expired token")
				return
			}
			responses.Abort(c, http.StatusInternalServerError, err, "Could not verify session")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			reject(c, signInPath, err, "Invalid user ID format")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextSessionID, claims.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	token, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func reject(c *gin.Context, signInPath string, err error, message string) {
	if WantsHTML(c) {
		c.Redirect(http.StatusFound, signInPath)
		c.Abort()
		return
	}
	responses.Abort(c, http.StatusUnauthorized, err, message)
}

// WantsHTML reports whether the request comes from a browser page load.
func WantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// UserID returns the id Authenticate stored on the context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// SessionID returns the token id Authenticate stored on the context.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
