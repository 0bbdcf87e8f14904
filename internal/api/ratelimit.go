package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/cookscan/cookscan/internal/logging"
)

// RateLimit returns middleware that rejects requests over the configured
// rate with 429. A single shared limiter is enough here; the API is a
// debugging surface, not a public one.
func RateLimit(rps, burst int, logger logging.Logger) gin.HandlerFunc {
	if rps <= 0 {
		rps = 100
	}
	if burst <= 0 {
		burst = rps
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.Warn("rate limit exceeded",
				logging.String("path", c.Request.URL.Path),
				logging.String("client", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
