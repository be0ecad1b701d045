package routes

import (
	"cycleroute/internal/handlers"
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadHandler *handlers.UploadHandler, sessions *services.SessionStore) {
	r.POST("/uploads", middleware.AuthRequired(sessions), uploadHandler.UploadImage)
}
