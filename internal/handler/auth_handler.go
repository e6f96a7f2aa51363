package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Titanium1971/artimon-backend/internal/auth"
	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/middleware"
	"github.com/Titanium1971/artimon-backend/internal/validator"
)

// AuthHandler handles admin login and token verification.
type AuthHandler struct {
	auth      *auth.Service
	validator *validator.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *auth.Service, v *validator.Validator) *AuthHandler {
	return &AuthHandler{
		auth:      authService,
		validator: v,
	}
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req validator.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validator.ValidateLogin(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// One generic message for every credential mismatch.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Message: "login successful",
	})
}

// Verify handles GET /api/admin/verify. The auth middleware has already
// validated the token; this just echoes the session identity.
func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"email": middleware.GetAdminEmail(c),
	})
}
