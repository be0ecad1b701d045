package routes

import (
	"cycleroute/internal/handlers"

	"github.com/gin-gonic/gin"
)

func SetupPOIRoutes(r *gin.RouterGroup, poiHandler *handlers.POIHandler) {
	poi := r.Group("/poi")
	{
		poi.GET("/categories", poiHandler.GetCategories)
		poi.POST("/near-route", poiHandler.FindNearRoute)
	}
}
