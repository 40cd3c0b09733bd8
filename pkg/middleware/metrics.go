package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"trailbook/internal/metrics"
)

// MetricsMiddleware records request counts and latency per route template, so
// /routes/:id stays a single series.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
