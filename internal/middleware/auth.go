package middleware

import (
	"net/http"
	"strings"

	"emrys-pos/internal/auth"

	"github.com/gin-gonic/gin"
)

const claimsKey = "authClaims"

// RequireManager rejects requests lacking a valid manager token.
// Catalog edits and settings changes sit behind this guard; the sales
// flow itself does not.
func RequireManager(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "manager token required"})
			return
		}

		claims, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if claims.Role != auth.RoleManager {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "manager role required"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}
