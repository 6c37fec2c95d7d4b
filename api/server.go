// Package api exposes the content analyzer over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/seo-optimizer/contentscore/analyzer"
	"github.com/seo-optimizer/contentscore/logging"
	"github.com/seo-optimizer/contentscore/metrics"
	"github.com/seo-optimizer/contentscore/middleware"
	"github.com/seo-optimizer/contentscore/stats"
)

// maxBodyBytes bounds the size of an analysis request.
const maxBodyBytes = 4 << 20

// Options wires the router to its services. Only Analyzer and Logger are
// required.
type Options struct {
	Analyzer    *analyzer.Analyzer
	Logger      *logrus.Logger
	Traffic     *logging.Traffic
	Stats       *stats.Storage
	Metrics     *metrics.Collector
	RateLimiter *middleware.RateLimiter
	DevMode     bool
}

type server struct {
	analyzer *analyzer.Analyzer
	log      *logrus.Entry
	traffic  *logging.Traffic
	stats    *stats.Storage
	devMode  bool
}

// NewRouter returns the HTTP handler of the service.
func NewRouter(opts Options) *gin.Engine {
	s := &server{
		analyzer: opts.Analyzer,
		log:      opts.Logger.WithField("component", "api"),
		traffic:  opts.Traffic,
		stats:    opts.Stats,
		devMode:  opts.DevMode,
	}

	r := gin.New()
	r.Use(middleware.RequestIDHandler())
	r.Use(middleware.ErrorHandler(opts.Logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	r.Use(middleware.StatsMiddleware(opts.Traffic, opts.Stats, opts.Metrics))

	api := r.Group("/api")
	{
		if opts.RateLimiter != nil {
			api.Use(opts.RateLimiter.RateLimit())
		}
		api.GET("/health", s.health)
		api.POST("/analyze", s.analyze)
		api.GET("/rules", s.rules)
		api.GET("/statistics", s.statistics)
	}

	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	return r
}
