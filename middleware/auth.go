package middleware

import (
	"net/http"
	"strings"

	"pawhaven/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware resolves the bearer token to an identity and sets
// "userID" and "role" on the request context. The token hash must match the
// session record in Redis, so revoked sessions fail even before expiry.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		storedHash, err := utils.GetSessionToken(utils.GetAuthCacheClient(), userID)
		if err == redis.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session revoked or expired"})
			return
		}
		if err != nil {
			// Redis outage: log and fall through on the signed token alone.
			utils.GetLogger().Warn("auth cache unavailable, accepting signed token",
				zap.String("userID", userID), zap.Error(err))
		} else if storedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token mismatch"})
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}
