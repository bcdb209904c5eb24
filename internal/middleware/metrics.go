// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"github.com/gin-gonic/gin"

	"blog-api/internal/metrics"
)

const (
	metricsPath   = "/metrics"
	unmatchedPath = "unmatched"
)

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP
// requests, labelled by route template rather than raw URL.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == metricsPath {
			c.Next()
			return
		}

		timer := metrics.NewTimer()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), timer.Seconds())
	}
}
