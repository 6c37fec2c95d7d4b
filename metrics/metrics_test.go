package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestCollector_Recording(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollectorWithRegistry("contentscore", registry)

	c.RecordAnalysis("good", 82, 2*time.Millisecond)
	c.RecordAnalysis("poor", 20, time.Millisecond)
	c.RecordCache(true)
	c.RecordCache(false)
	c.RecordRequest(http.MethodPost, "/api/analyze", http.StatusOK, 5*time.Millisecond)
	c.RecordRateLimited()

	body := scrape(t, c)
	assert.Contains(t, body, `contentscore_analysis_total{level="good"} 1`)
	assert.Contains(t, body, `contentscore_analysis_total{level="poor"} 1`)
	assert.Contains(t, body, "contentscore_analysis_score_count 2")
	assert.Contains(t, body, "contentscore_cache_hits_total 1")
	assert.Contains(t, body, "contentscore_cache_misses_total 1")
	assert.Contains(t, body, `contentscore_http_requests_total{method="POST",path="/api/analyze",status="200"} 1`)
	assert.Contains(t, body, "contentscore_http_rate_limited_total 1")
}

func TestCollector_SeparateRegistries(t *testing.T) {
	a := NewCollectorWithRegistry("contentscore", prometheus.NewRegistry())
	b := NewCollectorWithRegistry("contentscore", prometheus.NewRegistry())

	a.RecordCache(true)

	assert.Contains(t, scrape(t, a), "contentscore_cache_hits_total 1")
	assert.Contains(t, scrape(t, b), "contentscore_cache_hits_total 0")
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordAnalysis("ok", 50, time.Millisecond)
		c.RecordCache(true)
		c.RecordRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		c.RecordRateLimited()
	})
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
