package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tsenadheera/portfolio/internal/logging"
	"github.com/tsenadheera/portfolio/internal/ratelimit"
)

// RateLimit counts one hit per client IP. Over the limit it aborts with 429
// and body. If the store is unreachable the request is let through.
func RateLimit(l *ratelimit.Limiter, body any) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := l.Allow(c.Request.Context(), c.ClientIP())
		limited := errors.Is(err, ratelimit.ErrLimited)
		if err != nil && !limited {
			logging.FromContext(c.Request.Context()).Warn("rate limiter unavailable, allowing request",
				zap.String("store", l.StoreName()),
				zap.Error(err),
			)
			c.Next()
			return
		}

		reset := strconv.Itoa(int(math.Ceil(d.ResetIn.Seconds())))
		h := c.Writer.Header()
		h.Set("RateLimit-Limit", strconv.Itoa(d.Limit))
		h.Set("RateLimit-Remaining", strconv.Itoa(d.Remaining))
		h.Set("RateLimit-Reset", reset)

		if limited {
			h.Set("Retry-After", reset)
			logging.FromContext(c.Request.Context()).Info("rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, body)
			return
		}

		c.Next()
	}
}
