package routes

import (
	"mechfinder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices        = "/services"
	PathB2BApplications = "/b2b/applications"
)

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler, requireAuth, requireAdmin gin.HandlerFunc) {
	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.List)
		services.GET("/:id", serviceHandler.GetByID)

		services.POST("", requireAuth, requireAdmin, serviceHandler.Create)
		services.PATCH("/:id", requireAuth, requireAdmin, serviceHandler.Update)
		services.DELETE("/:id", requireAuth, requireAdmin, serviceHandler.Delete)
	}
}

func addB2BRoutes(rg *gin.RouterGroup, b2bHandler *handlers.B2BHandler, requireAuth, requireAdmin gin.HandlerFunc) {
	applications := rg.Group(PathB2BApplications)
	{
		applications.POST("", b2bHandler.Apply)

		applications.GET("", requireAuth, requireAdmin, b2bHandler.List)
		applications.GET("/:id", requireAuth, requireAdmin, b2bHandler.GetByID)
		applications.PATCH("/:id/decision", requireAuth, requireAdmin, b2bHandler.Decide)
	}
}
