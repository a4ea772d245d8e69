package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsenadheera/portfolio/internal/logging"
)

const HeaderRequestID = "X-Request-Id"

// maxRequestIDLen bounds a client-supplied ID; longer ones are replaced.
const maxRequestIDLen = 128

type requestIDKey struct{}

// RequestID tags each request with the client's X-Request-Id, or a fresh
// UUID when the header is missing or oversized. The ID is echoed in the
// response, and a logger carrying it is placed in the request context.
// One access line is logged when the handler chain returns.
func RequestID(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if rid == "" || len(rid) > maxRequestIDLen {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)

		reqLogger := logger.With(zap.String("request_id", rid))
		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, rid)
		ctx = logging.NewContext(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Writer.Header().Set(HeaderRequestID, rid)

		start := time.Now()
		c.Next()

		reqLogger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// GetRequestID returns the ID stored by RequestID, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}
