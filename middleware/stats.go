package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/contentscore/logging"
	"github.com/seo-optimizer/contentscore/metrics"
	"github.com/seo-optimizer/contentscore/stats"
)

// AnalyzePath is the route whose requests count as analyses.
const AnalyzePath = "/api/analyze"

// SlugKey is the context key under which the analyze handler stores the slug
// of the analyzed page.
const SlugKey = "analyzed_slug"

// StatsMiddleware tracks visitors, analysis requests and request metrics.
// Any of the collectors may be nil.
func StatsMiddleware(traffic *logging.Traffic, storage *stats.Storage, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		if traffic != nil {
			traffic.TrackVisitor(c.ClientIP())
		}

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		collector.RecordRequest(c.Request.Method, path, status, elapsed)

		if c.Request.Method != http.MethodPost || c.Request.URL.Path != AnalyzePath {
			return
		}
		failed := status >= http.StatusBadRequest
		if traffic != nil {
			traffic.TrackAnalysis(c.GetString(SlugKey), float64(elapsed.Milliseconds()), failed)
		}
		if failed && storage != nil {
			storage.RecordError()
		}
	}
}
