package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// RateLimit aplica um limite global de requisições por segundo.
// rps <= 0 desliga o limite.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			httperr.TooManyRequests(c, "rate_limited", "Muitas requisições, tente novamente.")
			return
		}
		c.Next()
	}
}
