package delivery

import (
	"errors"
	"log"
	"net/http"

	authdto "virtualgrow-server/internal/auth/dto"
	"virtualgrow-server/internal/auth/usecase"
	"virtualgrow-server/pkg/config"

	"github.com/gin-gonic/gin"
)

// RefreshCookieName is the http-only cookie carrying the refresh token on
// cookie-transport deployments.
const RefreshCookieName = "refreshToken"

// AuthHandler handles auth-related HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

// Signup creates a new user account.
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: email, password and name"})
		return
	}

	user, err := h.authUsecase.SignUp(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
			return
		}
		h.internalError(c, "Error creating user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

// Login authenticates a user and issues an access+refresh token pair.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: email and password"})
		return
	}

	result, err := h.authUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid credentials"})
		default:
			h.internalError(c, "Error logging in user", err)
		}
		return
	}

	if h.config.TokenTransport == config.TransportCookie {
		h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"user":         result.User,
	})
}

// RefreshToken exchanges a live refresh token for a new access token.
// POST /api/auth/refresh-token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, ok := h.extractRefreshToken(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized: Invalid refresh token"})
		return
	}

	accessToken, err := h.authUsecase.RefreshAccessToken(refreshToken)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) || errors.Is(err, usecase.ErrTokenRevoked) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized: Invalid refresh token"})
			return
		}
		h.internalError(c, "Error refreshing token", err)
		return
	}

	if h.config.TokenTransport == config.TransportCookie {
		h.setCookie(c, AccessCookieName, accessToken, int(h.config.AccessTokenExpiry.Seconds()))
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logout revokes the current session. Idempotent: revoking an unknown or
// already-cleared token still succeeds.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, ok := h.extractRefreshToken(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
		return
	}

	if err := h.authUsecase.Logout(refreshToken); err != nil {
		h.internalError(c, "Error logging out user", err)
		return
	}

	if h.config.TokenTransport == config.TransportCookie {
		h.setCookie(c, AccessCookieName, "", -1)
		h.setCookie(c, RefreshCookieName, "", -1)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// ForgotPassword starts a password reset and mails a single-use token.
// POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req authdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := h.authUsecase.ForgotPassword(req.Email); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.internalError(c, "Error processing password reset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ResetPassword consumes a reset token and sets a new password.
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: email, resetToken and newPassword"})
		return
	}

	if err := h.authUsecase.ResetPassword(&req); err != nil {
		if errors.Is(err, usecase.ErrResetInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired password reset request"})
			return
		}
		h.internalError(c, "Error resetting password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// Profile returns the authenticated user's record.
// GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.authUsecase.Profile(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.internalError(c, "Error fetching user profile", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteAccount removes the authenticated user's record.
// DELETE /api/auth/delete
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.authUsecase.DeleteAccount(c.GetString("userID")); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.internalError(c, "Error deleting user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *AuthHandler) extractRefreshToken(c *gin.Context) (string, bool) {
	if h.config.TokenTransport == config.TransportCookie {
		tok, err := c.Cookie(RefreshCookieName)
		if err != nil || tok == "" {
			return "", false
		}
		return tok, true
	}

	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		return "", false
	}
	return req.RefreshToken, true
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	h.setCookie(c, AccessCookieName, accessToken, int(h.config.AccessTokenExpiry.Seconds()))
	h.setCookie(c, RefreshCookieName, refreshToken, int(h.config.RefreshTokenExpiry.Seconds()))
}

func (h *AuthHandler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, maxAge, "/", "", h.config.IsProduction(), true)
}

func (h *AuthHandler) internalError(c *gin.Context, msg string, err error) {
	// Details stay server-side; callers get a generic message only.
	log.Printf("[Auth] %s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
