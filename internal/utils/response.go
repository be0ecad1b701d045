package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: a success flag, a
// human-readable message, and any payload fields merged at the top level.

func buildResponse(success bool, message string, payload gin.H) gin.H {
	body := gin.H{"success": success}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

func SuccessResponse(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, buildResponse(true, message, payload))
}

func CreatedResponse(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusCreated, buildResponse(true, message, payload))
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, buildResponse(false, message, nil))
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, ErrUnauthorized)
}

func ForbiddenResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found")
}

func TooManyRequestsResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusTooManyRequests, message)
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, ErrInternalServer)
}

func ServiceUnavailableResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, message)
}
