package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// inFlightTTL bounds how long an action identity stays reserved if the
// response never completes (e.g. process crash between SETNX and DEL).
const inFlightTTL = 30 * time.Second

// Idempotency guards mutating actions against duplicate submission. Each
// request reserves a Redis key derived from the caller's Idempotency-Key
// header, or from method+path+user when the header is absent. A second
// request with the same identity while the first is in flight gets 409.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			key = fmt.Sprintf("%s:%s:%v", c.Request.Method, c.Request.URL.Path, c.GetUint("user_id"))
		}
		redisKey := "inflight:" + key

		ok, err := rdb.SetNX(c.Request.Context(), redisKey, 1, inFlightTTL).Result()
		if err != nil {
			// Redis being down must not block admin actions.
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "action already in progress"})
			return
		}

		c.Next()
		rdb.Del(c.Request.Context(), redisKey)
	}
}
