package handlers

import (
	"net/http"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Account registered successfully", user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Logged in successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout handles GET /auth/logout. Tokens are stateless; the client
// discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	respondOK(c, http.StatusOK, "Logged out successfully", nil)
}
