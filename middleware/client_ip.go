package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP prefers the first X-Forwarded-For hop, falling back to gin's
// resolved client IP.
func getClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
