package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kuro-ml/internal/shared/telemetry"
)

// operationKey mirrors inference.OperationKey; middleware sits below the
// domain packages and cannot import them.
const operationKey = "inferenceOp"

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if op := c.GetString(operationKey); op != "" {
			fields["operation"] = op
		}
		telemetry.Info("request.complete", fields)
	}
}
