package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_admin/internal/models"
	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

type AuthHandler struct {
	auth           repository.AuthRepository
	accessTokenTTL int // seconds, doubles as the session cookie lifetime
	secureCookies  bool
}

func NewAuthHandler(auth repository.AuthRepository, accessTokenTTL int, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		auth:           auth,
		accessTokenTTL: accessTokenTTL,
		secureCookies:  secureCookies,
	}
}

// Login authenticates by mobile and password. Admins get an http-only
// session cookie and no tokens in the body; everyone else gets the token
// pair in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req schemas.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	result, err := h.auth.Login(req)
	if err != nil {
		handleError(c, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if result.User.Role == string(models.RoleAdmin) {
		h.setSessionCookie(c, result.AccessToken)
		c.JSON(http.StatusOK, gin.H{"user": result.User})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req schemas.Signup
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	result, err := h.auth.Signup(req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req schemas.RefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if err := schemas.Validate(req); err != nil {
		handleError(c, err)
		return
	}

	result, err := h.auth.Refresh(req.Token)
	if err != nil {
		handleError(c, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	})
}

// Logout clears the admin session cookie. Bearer tokens cannot be revoked;
// clients just drop them.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, token, h.accessTokenTTL, "/", "", h.secureCookies, true)
}
