package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"staybook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// AuthCookieName is the cookie carrying the signed auth token.
const AuthCookieName = "auth_token"

// JWTAuthMiddleware resolves the authenticated user id from the auth cookie
// and puts it into the gin context under "userID". Verified token hashes are
// cached in Redis so repeat requests skip the signature check; when the
// cache is unavailable the middleware falls back to full verification.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		tokenString, err := c.Cookie(AuthCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx := context.Background()
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		// Nil when Redis is disabled or unreachable; treated as a cache miss.
		authCache := utils.AuthCacheClient
		cacheEnabled := authCache != nil

		if cacheEnabled {
			userID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && userID != "" {
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", userID)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to token verification.", err)
			}
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, userID, time.Hour).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// UserID extracts the authenticated user id set by JWTAuthMiddleware.
func UserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok && userID != ""
}
