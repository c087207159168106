package middleware

import (
	"net/http"

	"pawhaven/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects callers whose resolved role is not admin. Must run
// after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin role required"})
			return
		}
		c.Next()
	}
}
