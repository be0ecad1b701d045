package routes

import (
	"cycleroute/internal/handlers"
	"cycleroute/internal/middleware"
	"cycleroute/internal/services"
	"cycleroute/internal/utils"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers authentication endpoints. Credential endpoints
// carry a tighter rate limit than the rest of the API.
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, sessions *services.SessionStore) {
	auth := r.Group("")
	auth.Use(middleware.RateLimitMiddleware(utils.AuthRateLimit))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/reset_password", authHandler.ResetPassword)
		auth.POST("/send_verification_code", authHandler.SendVerificationCode)
		auth.POST("/verify_code", authHandler.VerifyCode)
	}

	r.POST("/logout", middleware.AuthRequired(sessions), authHandler.Logout)
}
