package handlers

import (
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	logger         *logger.Logger
}

func NewCommentHandler(commentService services.CommentService, log *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         log,
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var request services.CreateCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	comment, err := h.commentService.CreateComment(
		c.Request.Context(), c.Param("route_id"), middleware.CallerID(c), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "comment created", gin.H{"comment": comment})
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	list, err := h.commentService.ListComments(
		c.Request.Context(), c.Param("route_id"), middleware.CallerID(c), params)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{
		"comments":     list.Comments,
		"total":        list.Total,
		"page":         list.Page,
		"limit":        list.Limit,
		"avg_rating":   list.AvgRating,
		"review_count": list.ReviewCount,
	})
}

func (h *CommentHandler) GetReplies(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	list, err := h.commentService.ListReplies(
		c.Request.Context(), c.Param("route_id"), c.Param("comment_id"), params)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{
		"replies": list.Comments,
		"total":   list.Total,
		"page":    list.Page,
		"limit":   list.Limit,
	})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	err := h.commentService.DeleteComment(
		c.Request.Context(), c.Param("route_id"), c.Param("comment_id"), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "comment deleted", nil)
}
