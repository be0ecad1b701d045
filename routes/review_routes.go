package routes

import (
	"cycleroute/internal/handlers"
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupReviewRoutes(r *gin.RouterGroup, reviewHandler *handlers.ReviewHandler, sessions *services.SessionStore) {
	reviews := r.Group("/reviews/routes")
	{
		reviews.POST("/:route_id", middleware.AuthRequired(sessions), reviewHandler.SubmitReview)
		reviews.GET("/:route_id", middleware.OptionalAuth(sessions), reviewHandler.GetReviews)
		reviews.DELETE("/:route_id/:review_id", middleware.AuthRequired(sessions), reviewHandler.DeleteReview)
	}
}
