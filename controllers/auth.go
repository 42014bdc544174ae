package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"AuthCore/middleware"
	"AuthCore/pkg/session"
	"AuthCore/pkg/token"

	"github.com/gin-gonic/gin"
)

// Login handler
func Login(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}

		username := strings.TrimSpace(body.Username)
		password := body.Password

		if username == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Username and password are required"})
			return
		}

		pair, err := svc.Login(username, password)
		if err != nil {
			if errors.Is(err, session.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
				return
			}
			slog.Error("login failed", slog.String("err", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to create token"})
			return
		}

		c.JSON(http.StatusOK, pair)
	}
}

// Refresh handler: exchanges a refresh token for a fresh access token.
func Refresh(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.RefreshToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Refresh token is required"})
			return
		}

		pair, err := svc.Refresh(body.RefreshToken)
		if err != nil {
			if errors.Is(err, session.ErrInvalidToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid or expired refresh token"})
				return
			}
			slog.Error("refresh failed", slog.String("err", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to create token"})
			return
		}

		c.JSON(http.StatusOK, pair)
	}
}

// Logout handler: revokes the refresh token. Always succeeds, even if the
// token was never issued or is already revoked.
func Logout(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.RefreshToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Refresh token is required"})
			return
		}

		svc.Logout(body.RefreshToken)
		c.JSON(http.StatusOK, gin.H{"msg": "logged out"})
	}
}

// Me handler: surfaces the claims the auth middleware already decoded.
// No store lookup happens here.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(middleware.ContextClaimsKey)
		claims, castOK := v.(*token.Claims)
		if !ok || !castOK || claims.IssuedAt == nil || claims.ExpiresAt == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid token claims"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"username":   claims.Subject,
			"issued_at":  claims.IssuedAt.Unix(),
			"expires_at": claims.ExpiresAt.Unix(),
		})
	}
}
