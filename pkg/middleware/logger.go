package middleware

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"trailbook/internal/logging"
)

// RequestLogger writes one zerolog line per request, tagged with the trace id.
// It must run after TraceIDMiddleware.
func RequestLogger() gin.HandlerFunc {
	return ginlog.SetLogger(
		ginlog.WithSkipPath([]string{"/healthz", "/metrics"}),
		ginlog.WithUTC(true),
		ginlog.WithLogger(func(c *gin.Context, _ zerolog.Logger) zerolog.Logger {
			return logging.Logger().With().
				Str("trace_id", c.GetString("trace_id")).
				Logger()
		}),
	)
}
