package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinnynacc/teammate-directory-api/internal/service"
)

// scrapePath is excluded from request metrics so Prometheus polling does not
// dominate the histograms.
const scrapePath = "/metrics"

// Metrics observes every routed request. Requests are labelled with the
// registered route pattern; unrouted paths fall back to the raw URL so 404
// noise stays visible.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || c.Request.URL.Path == scrapePath {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
