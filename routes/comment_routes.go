package routes

import (
	"cycleroute/internal/handlers"
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupCommentRoutes(r *gin.RouterGroup, commentHandler *handlers.CommentHandler, sessions *services.SessionStore) {
	comments := r.Group("/comments/routes")
	{
		comments.POST("/:route_id", middleware.AuthRequired(sessions), commentHandler.CreateComment)
		comments.GET("/:route_id", middleware.OptionalAuth(sessions), commentHandler.GetComments)
		comments.GET("/:route_id/comments/:comment_id/replies", middleware.OptionalAuth(sessions), commentHandler.GetReplies)
		comments.DELETE("/:route_id/comments/:comment_id", middleware.AuthRequired(sessions), commentHandler.DeleteComment)
	}
}
