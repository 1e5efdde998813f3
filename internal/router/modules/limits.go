package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/mentor-hub/internal/container"
	"github.com/oksasatya/mentor-hub/internal/interface/middleware"
)

// limiter is a redis rate limit that collapses to a no-op when limiting is
// switched off or redis is not configured.
func limiter(max int, window time.Duration, key middleware.KeyFunc, allow middleware.AllowFunc) gin.HandlerFunc {
	rdb := container.GetRedis()
	if cfg := container.GetConfig(); cfg != nil && !cfg.RateLimitEnabled {
		rdb = nil
	}
	return middleware.RateLimit(rdb, max, window, key, allow)
}
