package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/L4U04/salvaluno/pkg/redis"
	"github.com/L4U04/salvaluno/pkg/response"
)

// RateLimit throttles a route per client IP using a redis counting
// window. rdb may be nil; requests then pass through unchecked, the
// same degradation policy as JWTAuth.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// a redis error never blocks traffic
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "muitas tentativas, aguarde um momento")
			c.Abort()
			return
		}

		c.Next()
	}
}
