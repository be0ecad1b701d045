package handlers

import (
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	routeService services.RouteService
	logger       *logger.Logger
}

func NewRouteHandler(routeService services.RouteService, log *logger.Logger) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
		logger:       log,
	}
}

func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var request services.CreateRouteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	route, err := h.routeService.CreateRoute(c.Request.Context(), middleware.CallerID(c), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "route created", gin.H{"route": route})
}

func (h *RouteHandler) GetUserRoutes(c *gin.Context) {
	routes, err := h.routeService.GetUserRoutes(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"routes": routes})
}

func (h *RouteHandler) GetPublicRoutes(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	routes, total, err := h.routeService.ListPublicRoutes(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{
		"routes": routes,
		"total":  total,
		"page":   params.Page,
		"limit":  params.Limit,
	})
}

func (h *RouteHandler) GetRoute(c *gin.Context) {
	route, err := h.routeService.GetRoute(c.Request.Context(), c.Param("route_id"), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"route": route})
}

func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	err := h.routeService.DeleteRoute(c.Request.Context(), c.Param("route_id"), middleware.CallerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "route deleted", nil)
}

func (h *RouteHandler) ShareRoute(c *gin.Context) {
	result, err := h.routeService.ShareRoute(c.Request.Context(), c.Param("route_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "share link generated", gin.H{
		"share_url":   result.ShareURL,
		"share_count": result.ShareCount,
		"links": gin.H{
			"facebook": result.Facebook,
			"twitter":  result.Twitter,
			"whatsapp": result.WhatsApp,
		},
	})
}

type visibilityRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}

func (h *RouteHandler) SetVisibility(c *gin.Context) {
	var request visibilityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	err := h.routeService.SetVisibility(c.Request.Context(), c.Param("route_id"), middleware.CallerID(c), *request.IsPublic)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "visibility updated", gin.H{"is_public": *request.IsPublic})
}
