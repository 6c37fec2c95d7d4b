package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/contentscore/logging"
	"github.com/seo-optimizer/contentscore/metrics"
	"github.com/seo-optimizer/contentscore/stats"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func perform(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	r := gin.New()
	r.Use(RequestIDHandler(), ErrorHandler(logger))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := perform(r, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred"}`, w.Body.String())
	assert.Contains(t, buf.String(), "Panic recovered")
	assert.Contains(t, buf.String(), "kaboom")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDHandler())
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := perform(r, http.MethodGet, "/id", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = perform(r, http.MethodGet, "/id", http.Header{RequestIDHeader: []string{"trace-42"}})
	assert.Equal(t, "trace-42", w.Header().Get(RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollectorWithRegistry("test", registry)
	limiter := NewRateLimiter(1, 2, collector)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	r := gin.New()
	r.Use(limiter.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, http.MethodGet, "/", nil).Code)

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/", nil).Code)

	assert.True(t, limiter.Allow("10.0.0.9"), "clients are limited independently")

	now = now.Add(time.Hour)
	assert.Equal(t, 2, limiter.Cleanup(10*time.Minute))
	assert.Empty(t, limiter.clients)

	families, err := registry.Gather()
	require.NoError(t, err)
	var limited float64
	for _, f := range families {
		if f.GetName() == "test_http_rate_limited_total" {
			limited = f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, limited)
}

func TestStatsMiddleware(t *testing.T) {
	traffic := logging.NewTraffic()
	storage, err := stats.NewStorage(t.TempDir(), quietLogger())
	require.NoError(t, err)
	defer storage.Shutdown()

	r := gin.New()
	r.Use(StatsMiddleware(traffic, storage, nil))
	r.POST(AnalyzePath, func(c *gin.Context) {
		if c.Query("fail") != "" {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		c.Set(SlugKey, "contact")
		c.Status(http.StatusOK)
	})
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	perform(r, http.MethodPost, AnalyzePath, nil)
	perform(r, http.MethodPost, AnalyzePath+"?fail=1", nil)
	perform(r, http.MethodGet, "/api/health", nil)

	snapshot := traffic.Snapshot(true)
	assert.Equal(t, 2, snapshot["totalRequests"])
	assert.InDelta(t, 50.0, snapshot["errorRate"], 0.001)
	assert.Equal(t, []logging.SlugCount{{Slug: "contact", Count: 1}}, snapshot["popularSlugs"])
	assert.Equal(t, 1, traffic.UniqueVisitors())
	assert.Equal(t, 1, storage.GetCurrentStats().Errors)
}
