package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketsystem/internal/infrastructure/ratelimit"
	"ticketsystem/internal/shared/logger"
	"ticketsystem/internal/shared/utils"
)

// RateLimit throttles requests per client IP. When the limiter backend is
// unreachable the request is allowed through; throttling must not become an
// outage.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
