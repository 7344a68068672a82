package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmbbc/bc-visitor-dashboard/internal/infrastructure/ratelimit"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/logger"
	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/utils"
)

// SubmitRateLimit throttles submissions per client IP. A limiter failure
// (redis outage) lets the request through; availability beats throttling
// here, the transactional dedupe key still holds the line.
func SubmitRateLimit(limiter ratelimit.Limiter, cfg ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP(), cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"error", err, "client_ip", c.ClientIP())
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("submission rate limit exceeded", "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many submissions, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
