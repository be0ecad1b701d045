package handlers

import (
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"
	"cycleroute/internal/utils"
	"cycleroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var request services.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	response, err := h.authService.Register(c.Request.Context(), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, "registration successful", gin.H{
		"token":    response.Token,
		"user_id":  response.UserID,
		"username": response.Username,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "login successful", gin.H{
		"token":    response.Token,
		"user_id":  response.UserID,
		"username": response.Username,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "logged out", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var request services.ResetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), &request); err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "password reset successful", nil)
}

type sendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) SendVerificationCode(c *gin.Context) {
	var request sendCodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	if err := h.authService.SendVerificationCode(c.Request.Context(), request.Email); err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "verification code sent", nil)
}

type verifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var request verifyCodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidInput)
		return
	}

	if err := h.authService.VerifyCode(c.Request.Context(), request.Email, request.Code); err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "code verified", nil)
}
