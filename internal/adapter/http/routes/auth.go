package routes

import (
	"mechfinder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth = "/auth"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, requireAuth gin.HandlerFunc) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", requireAuth, authHandler.Me)
	}
}
