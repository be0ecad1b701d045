package handlers

import (
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
	logger        *logger.Logger
}

func NewReviewHandler(reviewService services.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        log,
	}
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var request services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	review, overwritten, err := h.reviewService.SubmitReview(
		c.Request.Context(), c.Param("route_id"), middleware.CallerID(c), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if overwritten {
		utils.SuccessResponse(c, "review updated", gin.H{"review": review})
		return
	}
	utils.CreatedResponse(c, "review created", gin.H{"review": review})
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	list, err := h.reviewService.ListReviews(
		c.Request.Context(), c.Param("route_id"), middleware.CallerID(c), params)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{
		"reviews":      list.Reviews,
		"total":        list.Total,
		"page":         list.Page,
		"limit":        list.Limit,
		"avg_rating":   list.AvgRating,
		"review_count": list.ReviewCount,
	})
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	err := h.reviewService.DeleteReview(
		c.Request.Context(), c.Param("route_id"), c.Param("review_id"), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "review deleted", nil)
}
