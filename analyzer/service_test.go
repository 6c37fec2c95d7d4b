package analyzer

import (
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/contentscore/metrics"
	"github.com/seo-optimizer/contentscore/stats"
)

func newTestAnalyzer(t *testing.T, ttl time.Duration) *Analyzer {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	storage, err := stats.NewStorage(t.TempDir(), logger)
	require.NoError(t, err)

	a := New(Options{
		CacheTTL: ttl,
		Defaults: Config{Locale: "fr", Now: referenceDay},
		Stats:    storage,
		Metrics:  metrics.NewCollectorWithRegistry("test", prometheus.NewRegistry()),
		Logger:   logger,
	})
	t.Cleanup(func() { _ = a.Shutdown() })
	return a
}

func TestAnalyzerCaching(t *testing.T) {
	a := newTestAnalyzer(t, time.Minute)
	in := &Input{MetaTitle: "Agence web à Ussel", Slug: "agence-web-a-ussel", FocusKeyword: "agence web"}

	assert.False(t, a.IsCached(in, nil))

	first := a.Analyze(in, nil)
	assert.True(t, a.IsCached(in, nil))

	second := a.Analyze(in, nil)
	assert.Equal(t, first, second)
	assert.Equal(t, Analyze(in, &Config{Locale: "fr", Now: referenceDay}), first)

	cs := a.GetCacheStats()
	assert.Equal(t, 1, cs.Entries)
	assert.Equal(t, 1, cs.Hits)
	assert.Equal(t, 1, cs.Misses)
	assert.Equal(t, 1, cs.Analyses)
	assert.Equal(t, time.Minute, cs.TTL)
	assert.InDelta(t, float64(first.Score), cs.AverageScore, 0.001)

	a.ClearCache()
	assert.False(t, a.IsCached(in, nil))
	assert.Equal(t, 0, a.GetCacheStats().Entries)
}

func TestAnalyzerCacheKeyIncludesConfig(t *testing.T) {
	a := newTestAnalyzer(t, time.Minute)
	in := &Input{MetaTitle: "Agence web à Ussel"}

	a.Analyze(in, nil)
	other := &Config{Locale: "fr", Now: referenceDay, DisabledRules: []string{GroupTitle}}
	assert.False(t, a.IsCached(in, other))

	res := a.Analyze(in, other)
	assert.Empty(t, checksOf(res, GroupTitle))
	assert.Equal(t, 2, a.GetCacheStats().Entries)
}

func TestAnalyzerReturnsIndependentCopies(t *testing.T) {
	a := newTestAnalyzer(t, time.Minute)
	in := &Input{MetaTitle: "Agence web à Ussel"}

	first := a.Analyze(in, nil)
	require.NotEmpty(t, first.Checks)
	first.Checks[0].Status = "tampered"

	assert.NotEqual(t, Status("tampered"), a.Analyze(in, nil).Checks[0].Status)
}

func TestAnalyzerWithoutCache(t *testing.T) {
	a := newTestAnalyzer(t, -1)
	in := &Input{MetaTitle: "Agence web à Ussel"}

	a.Analyze(in, nil)
	a.Analyze(in, nil)

	assert.False(t, a.IsCached(in, nil))
	cs := a.GetCacheStats()
	assert.Equal(t, 0, cs.Entries)
	assert.Equal(t, 2, cs.Analyses)
	assert.Zero(t, cs.Hits+cs.Misses)
}

func TestAnalyzerJSON(t *testing.T) {
	a := newTestAnalyzer(t, time.Minute)

	assert.Equal(t, Result{Score: 0, Level: LevelPoor, Checks: []Check{}}, a.AnalyzeJSON([]byte(`["not", "an", "object"]`), nil))
	assert.Zero(t, a.GetCacheStats().Analyses)

	res := a.AnalyzeJSON(loadLocalPage(t), nil)
	assert.GreaterOrEqual(t, res.Score, 71)
	assert.Equal(t, 1, a.GetCacheStats().Analyses)
}

func TestAnalyzerNilDependencies(t *testing.T) {
	a := New(Options{})
	assert.NotPanics(t, func() {
		a.Analyze(&Input{MetaTitle: "Agence web"}, nil)
		a.GetCacheStats()
	})
	assert.Nil(t, a.GetStats())
	assert.NoError(t, a.Shutdown())
}
