package auth

import (
	"AuthCore/controllers"
	"AuthCore/pkg/session"

	"github.com/gin-gonic/gin"
)

// RegisterPublic registers public auth routes: /login, /refresh
func RegisterPublic(r *gin.Engine, svc *session.Service) {
	r.POST("/login", controllers.Login(svc))
	r.POST("/refresh", controllers.Refresh(svc))
}

// RegisterProtected registers protected auth routes: /logout, /me
func RegisterProtected(g *gin.RouterGroup, svc *session.Service) {
	g.POST("/logout", controllers.Logout(svc))
	g.GET("/me", controllers.Me())
}
