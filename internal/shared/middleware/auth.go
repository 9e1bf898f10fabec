package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"openmusic-backend/internal/shared/response"
	"openmusic-backend/pkg/jwt"
)

const (
	// ContextUserID is the gin context key the authenticated user id is
	// stored under.
	ContextUserID = "userID"

	// ContextUsername carries the username from the token claims.
	ContextUsername = "username"
)

// Auth validates the Bearer token and injects the caller's identity into
// the request context. Ownership decisions stay in the services; this layer
// only establishes who is calling.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		return "", false
	}
	return userID, true
}

// RequireUserID is UserID for handlers behind Auth; it writes the 401 itself
// when the id is missing.
func RequireUserID(c *gin.Context) (string, bool) {
	userID, ok := UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "unauthenticated"})
		c.Abort()
	}
	return userID, ok
}
