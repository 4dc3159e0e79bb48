package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockbill/backend/internal/application/identity"
	"github.com/stockbill/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	tokenGuard  gin.HandlerFunc
}

// NewAuthHandler creates a new auth handler. tokenGuard protects the
// token-introspection endpoint; all other routes are public.
func NewAuthHandler(authService *identity.AuthService, tokenGuard gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{authService: authService, tokenGuard: tokenGuard}
}

// RegisterRoutes registers auth routes on the given router group
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", h.tokenGuard, h.Me)
	}
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var req identity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.authService.Register(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"username": req.Username})
}

// Login authenticates a user and returns an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Me returns the identity of the bearer of the presented token
func (h *AuthHandler) Me(c *gin.Context) {
	h.Success(c, gin.H{"user_id": middleware.GetJWTUserID(c)})
}
