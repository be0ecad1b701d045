package routes

import (
	"cycleroute/internal/handlers"
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(r *gin.RouterGroup, userHandler *handlers.UserHandler, sessions *services.SessionStore) {
	users := r.Group("/users")
	{
		users.GET("/profile", middleware.AuthRequired(sessions), userHandler.GetProfile)
		users.GET("/:user_id", userHandler.GetUser)
	}
}
