package handlers

import (
	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

type POIHandler struct {
	poiService services.POIService
	logger     *logger.Logger
}

func NewPOIHandler(poiService services.POIService, log *logger.Logger) *POIHandler {
	return &POIHandler{
		poiService: poiService,
		logger:     log,
	}
}

func (h *POIHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, "", gin.H{"categories": h.poiService.GetCategories()})
}

func (h *POIHandler) FindNearRoute(c *gin.Context) {
	var request services.NearRouteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	results, err := h.poiService.FindNearRoute(c.Request.Context(), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{
		"pois":  results,
		"count": len(results),
	})
}
