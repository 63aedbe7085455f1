package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/internal/infra/cache"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitMiddleware caps how often an authenticated user may perform an
// action. Fails open when redis is unavailable.
func RateLimitMiddleware(rdb *cache.RedisCache, action string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		userID, err := utils.GetUserID(c)
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, err.Error())
			return
		}
		key := fmt.Sprintf("rate:limit:%v:%s", userID, action)

		allowed, err := rdb.AllowRequest(c, key, limit, window)
		if err != nil {
			zap.L().Warn("rate limit redis failure", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			utils.Error(c, http.StatusTooManyRequests, "too many requests, try again later")
			return
		}

		c.Next()
	}
}
