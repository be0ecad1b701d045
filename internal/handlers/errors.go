package handlers

import (
	"errors"
	"net/http"

	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinels onto HTTP statuses. Anything unmatched
// is a server fault and gets logged.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "resource")
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, utils.ErrForbidden)
	case errors.Is(err, services.ErrUnauthorized):
		utils.UnauthorizedResponse(c)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, utils.ErrInvalidCredentials)
	case errors.Is(err, services.ErrUserExists):
		utils.BadRequestResponse(c, utils.ErrUserExists)
	case errors.Is(err, services.ErrPasswordTooShort):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrCodeExpired):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrCodeMismatch):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrCodeResendTooSoon):
		utils.TooManyRequestsResponse(c, err.Error())
	case errors.Is(err, services.ErrMediaInReply):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		utils.InternalServerErrorResponse(c)
	}
}
