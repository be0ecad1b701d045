package routes

import (
	"cycleroute/internal/handlers"
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupVoteRoutes(r *gin.RouterGroup, voteHandler *handlers.VoteHandler, sessions *services.SessionStore) {
	votes := r.Group("/votes/routes")
	{
		votes.POST("/:route_id", middleware.AuthRequired(sessions), voteHandler.CastVote)
		votes.GET("/:route_id", middleware.OptionalAuth(sessions), voteHandler.GetVotes)
	}
}
