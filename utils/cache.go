// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"pawhaven/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces session records in the auth DB.
const AuthCachePrefix = "authToken:"

// AuthCacheClient is the dedicated client for session/token records.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for session records.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for session records.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// SaveSessionToken stores the hash of an issued token so it can be revoked later.
func SaveSessionToken(client *redis.Client, userID, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	return client.Set(ctx, AuthCachePrefix+userID, tokenHash, ttl).Err()
}

// GetSessionToken fetches the stored token hash for a user, if any.
func GetSessionToken(client *redis.Client, userID string) (string, error) {
	ctx := context.Background()
	return client.Get(ctx, AuthCachePrefix+userID).Result()
}

// DeleteSessionToken revokes a user's session.
func DeleteSessionToken(client *redis.Client, userID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthCachePrefix+userID).Err()
}
