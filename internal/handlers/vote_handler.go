package handlers

import (
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService services.VoteService
	logger      *logger.Logger
}

func NewVoteHandler(voteService services.VoteService, log *logger.Logger) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
		logger:      log,
	}
}

type castVoteRequest struct {
	VoteType *int `json:"vote_type" binding:"required"`
}

func (h *VoteHandler) CastVote(c *gin.Context) {
	var request castVoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	result, err := h.voteService.CastVote(
		c.Request.Context(), c.Param("route_id"), middleware.CallerID(c), *request.VoteType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "vote recorded"
	if result.UserVote == nil {
		message = "vote removed"
	}

	utils.SuccessResponse(c, message, gin.H{
		"upvotes":    result.Upvotes,
		"downvotes":  result.Downvotes,
		"vote_score": result.VoteScore,
		"user_vote":  result.UserVote,
	})
}

func (h *VoteHandler) GetVotes(c *gin.Context) {
	result, err := h.voteService.GetVotes(
		c.Request.Context(), c.Param("route_id"), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{
		"upvotes":    result.Upvotes,
		"downvotes":  result.Downvotes,
		"vote_score": result.VoteScore,
		"user_vote":  result.UserVote,
	})
}
