package handlers

import (
	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService services.UploadService
	logger        *logger.Logger
}

func NewUploadHandler(uploadService services.UploadService, log *logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		logger:        log,
	}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "file is required")
		return
	}

	result, err := h.uploadService.UploadImage(c.Request.Context(), header)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "file uploaded", gin.H{
		"filename":      result.Filename,
		"url":           result.URL,
		"thumbnail_url": result.ThumbnailURL,
		"size":          result.Size,
	})
}
