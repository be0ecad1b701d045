package handlers

import (
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CustomPointHandler struct {
	pointService services.CustomPointService
	logger       *logger.Logger
}

func NewCustomPointHandler(pointService services.CustomPointService, log *logger.Logger) *CustomPointHandler {
	return &CustomPointHandler{
		pointService: pointService,
		logger:       log,
	}
}

func (h *CustomPointHandler) CreatePoint(c *gin.Context) {
	var request services.CreatePointRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	point, err := h.pointService.CreatePoint(c.Request.Context(), middleware.CallerID(c), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "custom point created", gin.H{"point": point})
}

func (h *CustomPointHandler) GetUserPoints(c *gin.Context) {
	points, err := h.pointService.GetUserPoints(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"points": points})
}

func (h *CustomPointHandler) DeletePoint(c *gin.Context) {
	err := h.pointService.DeletePoint(c.Request.Context(), c.Param("point_id"), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "custom point deleted", nil)
}
