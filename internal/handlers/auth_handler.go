package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/middlewares"
	"restaurant_dashboard/internal/responses"
	"restaurant_dashboard/internal/services"
	"restaurant_dashboard/internal/utils"
)

const (
	RefreshTokenCookieName = "refresh_token"
	RefreshTokenMaxAge     = int(utils.RefreshTokenDuration / time.Second)
	AccessTokenMaxAge      = int(utils.AccessTokenDuration / time.Second)
)

type AuthHandler struct {
	authService  *services.AuthService
	adminService *services.AdminService
	secure       bool
}

func NewAuthHandler(authService *services.AuthService, adminService *services.AdminService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, adminService: adminService, secure: secureCookies}
}

func (h *AuthHandler) setTokens(c *gin.Context, pair *utils.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.AccessTokenCookie, pair.AccessToken, AccessTokenMaxAge, "/", "", h.secure, true)
	c.SetCookie(RefreshTokenCookieName, pair.RefreshToken, RefreshTokenMaxAge, "/", "", h.secure, true)
}

func (h *AuthHandler) clearTokens(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.AccessTokenCookie, "", -1, "/", "", h.secure, true)
	c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", h.secure, true)
}

func tokenBody(pair *utils.TokenPair) gin.H {
	return gin.H{
		"access_token": pair.AccessToken,
		"expires_at":   pair.AccessExpiresAt,
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide your email and password correctly")
		return
	}

	user, pair, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err, "Failed to login")
		return
	}

	h.setTokens(c, pair)
	body := tokenBody(pair)
	body["user"] = user
	responses.Success(c, http.StatusOK, body, "Signed in successfully")
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookieName)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Missing refresh token")
		return
	}

	pair, err := h.authService.Session(c.Request.Context(), refreshToken)
	if err != nil {
		if services.IsSessionError(err) {
			h.clearTokens(c)
		}
		fail(c, err, "Invalid or expired refresh token")
		return
	}

	h.setTokens(c, pair)
	responses.Success(c, http.StatusOK, tokenBody(pair), "Access token refreshed successfully")
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "Failed to retrieve user")
		return
	}

	body := gin.H{"user": user}
	profile, err := h.adminService.Profile(c.Request.Context(), userID)
	switch {
	case err == nil:
		body["profile"] = profile
	case !errors.Is(err, services.ErrProfileNotFound):
		fail(c, err, "Failed to retrieve profile")
		return
	}

	responses.Success(c, http.StatusOK, body, "User retrieved successfully")
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.SignOut(c.Request.Context(), middlewares.SessionID(c)); err != nil {
		fail(c, err, "Could not sign out")
		return
	}

	h.clearTokens(c)
	responses.Success(c, http.StatusOK, nil, "Logged out successfully")
}
