package rest

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger logs one line per request and tags it with a request id,
// taken from the caller when present.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	log := logger.With("component", "http")

	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request failed", append(attrs, "error", c.Errors.String())...)
		case len(c.Errors) > 0:
			log.Info("request rejected", append(attrs, "error", c.Errors.String())...)
		default:
			log.Debug("request handled", attrs...)
		}
	}
}
