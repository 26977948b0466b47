package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/prometheus"
)

// Metrics records request counts, durations, and in-flight gauges. The path
// label uses the matched route pattern so unmatched probes cannot explode
// the label cardinality.
func Metrics(m *prometheus.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		method := c.Request.Method
		m.HTTPActiveRequests.WithLabelValues(method).Inc()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPActiveRequests.WithLabelValues(method).Dec()
		m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
