package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/Manzp111/smartville/internal/application/directory"
)

// AuthHandler handles registration, login and OTP verification
type AuthHandler struct {
	BaseHandler
	authService *directoryapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *directoryapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and sends a verification code
func (h *AuthHandler) Register(c *gin.Context) {
	var req directoryapp.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, user)
}

// Login authenticates a user and returns a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req directoryapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Refresh exchanges a refresh token for a fresh pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req directoryapp.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tokens)
}

// VerifyOTP consumes a one-time verification code
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req directoryapp.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// ResendOTP sends a fresh verification code
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req directoryapp.ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ResendOTP(c.Request.Context(), req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"sent": true})
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/verify-otp", h.VerifyOTP)
		auth.POST("/resend-otp", h.ResendOTP)
	}
}
