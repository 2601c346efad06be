package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerToken extracts the bearer credential from a request, stripping
// the "Bearer " prefix if present.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// RequireToken gates a route group on a valid session token. Rejected
// requests get a 401 before the handler runs, so no side effects occur.
func RequireToken(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" || !svc.Authorize(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}
		c.Next()
	}
}
