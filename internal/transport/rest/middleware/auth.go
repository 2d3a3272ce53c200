package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taleom/taskboard/internal/app/auth/jwt"
)

const userIDKey = "userID"

// Authenticate guards protected routes. The check is stateless: only the
// signature and expiry are inspected, never storage.
func Authenticate(tokens jwt.TokenUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var raw string
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
			raw = parts[1]
		}

		userID, err := tokens.ValidateAccessToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the identity attached by Authenticate, or uuid.Nil when
// the gate did not run.
func UserID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}
