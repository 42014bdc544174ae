package routes

import (
	"net/http"

	"AuthCore/middleware"
	"AuthCore/pkg/session"
	"AuthCore/pkg/token"

	"github.com/gin-gonic/gin"

	authRoutes "AuthCore/routes/auth"
)

func RegisterRoutes(r *gin.Engine, svc *session.Service, issuer *token.Issuer) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "Go auth backend running"})
	})

	authRoutes.RegisterPublic(r, svc)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(issuer))
	authRoutes.RegisterProtected(protected, svc)
}
