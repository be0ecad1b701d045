package routes

import (
	"cycleroute/internal/handlers"
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupCustomPointRoutes(r *gin.RouterGroup, pointHandler *handlers.CustomPointHandler, sessions *services.SessionStore) {
	points := r.Group("/custom-points")
	points.Use(middleware.AuthRequired(sessions))
	{
		points.GET("", pointHandler.GetUserPoints)
		points.POST("", pointHandler.CreatePoint)
		points.DELETE("/:point_id", pointHandler.DeletePoint)
	}
}
