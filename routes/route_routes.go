package routes

import (
	"cycleroute/internal/handlers"
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRouteRoutes(r *gin.RouterGroup, routeHandler *handlers.RouteHandler, sessions *services.SessionStore) {
	rts := r.Group("/routes")
	{
		rts.GET("", middleware.AuthRequired(sessions), routeHandler.GetUserRoutes)
		rts.POST("", middleware.AuthRequired(sessions), routeHandler.CreateRoute)
		rts.GET("/public", routeHandler.GetPublicRoutes)
		rts.GET("/:route_id", middleware.OptionalAuth(sessions), routeHandler.GetRoute)
		rts.DELETE("/:route_id", middleware.AuthRequired(sessions), routeHandler.DeleteRoute)
		rts.POST("/:route_id/share", middleware.AuthRequired(sessions), routeHandler.ShareRoute)
		rts.PUT("/:route_id/visibility", middleware.AuthRequired(sessions), routeHandler.SetVisibility)
	}
}
