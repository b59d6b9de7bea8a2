package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
)

// AuthHandler handles registration, login, logout and the current session
type AuthHandler struct {
	service      services.AuthServiceInterface
	tokenManager *jwt.TokenManager
	cookieCfg    middleware.CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service services.AuthServiceInterface, tokenManager *jwt.TokenManager, cookieCfg middleware.CookieConfig) *AuthHandler {
	return &AuthHandler{
		service:      service,
		tokenManager: tokenManager,
		cookieCfg:    cookieCfg,
	}
}

// Register handles POST /api/v1/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.Register(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, "Registration successful. You can now log in.")
}

// Login handles POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.SetSessionCookie(c, h.cookieCfg, token)

	user := session.User
	c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		Message: "Login successful.",
		User:    &user,
	})
}

// Logout handles GET/POST /api/v1/logout. It succeeds without a session too.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context(), middleware.SessionIDFromCookie(c, h.tokenManager))
	middleware.ClearSessionCookie(c, h.cookieCfg)

	respondOK(c, "Logged out.")
}

// Session handles GET /api/v1/session
func (h *AuthHandler) Session(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{Success: true, User: &user})
}
