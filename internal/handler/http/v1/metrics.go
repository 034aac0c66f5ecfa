package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/relief_coordination_system/internal/metrics"
)

// MetricsMiddleware замеряет длительность запроса; маршрут берётся по шаблону, не по URL
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
