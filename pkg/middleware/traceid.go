package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"trailbook/internal/logging"
)

const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware reuses a well-formed incoming X-Trace-ID or mints one, and
// exposes it to handlers, the response headers and the request context.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), traceID))
		c.Next()
	}
}
