package handler

import (
	"errors"
	"net/http"

	"hospital-prototype-backend/internal/config"
	"hospital-prototype-backend/internal/middleware"
	"hospital-prototype-backend/internal/service"
	"hospital-prototype-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  *service.AuthService
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieMaxAge: int(cfg.JWT.TokenExpiry.Seconds()),
		cookieSecure: cfg.Server.GinMode == "release",
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Login handles the unified admin/patient login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Email, password, and role required")
		return
	}

	result, err := h.authService.Login(req.Email, req.Password, req.Role)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid credentials")
		case errors.As(err, &validationErr):
			utils.ErrorResponse(c, http.StatusBadRequest, validationErr.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	// Set session token as HttpOnly cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		result.Token,
		h.cookieMaxAge,
		"/",
		"",
		h.cookieSecure,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    result.User,
	})
}

// Logout clears the session cookie. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Whoami returns the decoded identity from the session token, or null when
// the token is missing or invalid. Never an error status.
func (h *AuthHandler) Whoami(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	claims, err := utils.ValidateSessionToken(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":           claims.UserID,
		"email":        claims.Email,
		"role":         claims.Role,
		"serialNumber": claims.SerialNumber,
	}})
}
