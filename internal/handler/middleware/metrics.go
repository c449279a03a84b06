package middleware

import (
	"time"

	"building-management/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records one sample per request, labelled by the route
// template so path parameters do not explode cardinality.
func MetricsMiddleware(rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rec.RecordRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
