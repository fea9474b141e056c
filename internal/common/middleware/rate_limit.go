package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"free-game-tracker/internal/common/errors"
)

// RateLimit throttles all inbound requests with a shared token bucket.
// A non-positive rps disables the limiter.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			AbortWithError(c, errors.NewRateLimitError("gateway"))
			return
		}
		c.Next()
	}
}
