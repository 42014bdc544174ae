package main

import (
	"time"

	"AuthCore/pkg/config"
	"AuthCore/pkg/session"
	"AuthCore/pkg/token"
	"AuthCore/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// config init via package init()

	issuer := token.NewIssuer(config.JWTSecret, config.AccessTokenTTL, config.RefreshTokenTTL)

	store := session.NewStore()
	go store.Janitor(config.SweepInterval)

	svc := session.NewService(store, issuer, session.Credentials{
		Username: config.AdminUsername,
		Password: config.AdminPassword,
	})

	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, svc, issuer)
	r.Run(":" + config.Port)
}
