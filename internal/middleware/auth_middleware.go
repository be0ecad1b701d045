package middleware

import (
	"strings"

	"cycleroute/internal/services"
	"cycleroute/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextToken  = "token"
)

// AuthRequired validates the bearer token against the session table and sets
// the user id on the request context.
func AuthRequired(sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		userID, ok := sessions.Get(token)
		if !ok {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present but lets
// anonymous requests through. Used on endpoints with private-route gating.
func OptionalAuth(sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if userID, ok := sessions.Get(token); ok {
				c.Set(ContextUserID, userID)
				c.Set(ContextToken, token)
			}
		}
		c.Next()
	}
}

// CallerID returns the authenticated user id, empty for anonymous requests.
func CallerID(c *gin.Context) string {
	if userID, exists := c.Get(ContextUserID); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}

	return token, true
}
