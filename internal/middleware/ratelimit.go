package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/salonsuite/salon-scheduler/internal/httperr"
)

// RateLimiter caps requests per client IP inside a fixed window,
// backed by a redis counter. If redis is unreachable the request is
// let through; login availability wins over the limit.
func RateLimiter(rdb *redis.Client, log *zap.Logger, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate-limit:" + c.FullPath() + ":" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := rdb.Get(ctx, key).Int()
		if err == redis.Nil {
			rdb.Set(ctx, key, 1, window)
			c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-1))
			c.Next()
			return
		}
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if count >= limit {
			httperr.Write(c, 429, "rate_limit_exceeded", "too many requests, try again later")
			c.Abort()
			return
		}

		rdb.Incr(ctx, key)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
		c.Next()
	}
}
