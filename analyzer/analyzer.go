// Package analyzer scores the content of a page against on-page SEO rules and
// returns a weighted 0-100 score with the list of checks behind it.
package analyzer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/seo-optimizer/contentscore/metrics"
	"github.com/seo-optimizer/contentscore/stats"
)

// Analyze scores in with cfg. A nil cfg uses the defaults. A nil input yields
// a zero score with no checks. Analyze performs no I/O and never panics on
// missing fields.
func Analyze(in *Input, cfg *Config) Result {
	if in == nil {
		return emptyResult()
	}
	var c Config
	if cfg != nil {
		c = *cfg
	}
	ctx := BuildContext(in, c)
	return Aggregate(evaluate(in, ctx))
}

// AnalyzeJSON decodes raw as an Input and scores it. Anything that is not a
// JSON object yields a zero score with no checks.
func AnalyzeJSON(raw []byte, cfg *Config) Result {
	in, ok := decodeInput(raw)
	if !ok {
		return emptyResult()
	}
	return Analyze(in, cfg)
}

func decodeInput(raw []byte) (*Input, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var in Input
	if err := json.Unmarshal(trimmed, &in); err != nil {
		return nil, false
	}
	return &in, true
}

func emptyResult() Result {
	return Result{Score: 0, Level: LevelPoor, Checks: []Check{}}
}

// Options configures an Analyzer.
type Options struct {
	// CacheTTL is how long a result is reused for identical input and
	// configuration. Zero means 30 minutes, negative disables caching.
	CacheTTL time.Duration
	// Defaults is the configuration used when a call supplies none. Its Now
	// also applies to per-call configurations that leave Now unset.
	Defaults Config
	Stats    *stats.Storage
	Metrics  *metrics.Collector
	Logger   *logrus.Logger
}

// CacheStats provides statistics about the analyzer's cache
type CacheStats struct {
	Entries      int           `json:"entries"`
	Hits         int           `json:"hits"`
	Misses       int           `json:"misses"`
	TTL          time.Duration `json:"ttl"`
	Analyses     int           `json:"analyses"`
	AverageScore float64       `json:"averageScore"`
}

// Analyzer is the long-lived scoring service: it caches results, records
// statistics and metrics, and logs every analysis.
type Analyzer struct {
	cache    *gocache.Cache
	cacheTTL time.Duration
	defaults Config
	stats    *stats.Storage
	metrics  *metrics.Collector
	log      *logrus.Entry
}

// New creates a new Analyzer instance
func New(opts Options) *Analyzer {
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	a := &Analyzer{
		cacheTTL: ttl,
		defaults: opts.Defaults,
		stats:    opts.Stats,
		metrics:  opts.Metrics,
		log:      logger.WithField("component", "analyzer"),
	}
	if ttl > 0 {
		a.cache = gocache.New(ttl, ttl*2)
	}
	return a
}

// Analyze scores in, serving identical requests from the cache.
func (a *Analyzer) Analyze(in *Input, cfg *Config) Result {
	if in == nil {
		return emptyResult()
	}
	effective := a.config(cfg)

	key, cacheable := a.cacheKey(in, effective)
	if cacheable {
		if v, found := a.cache.Get(key); found {
			a.recordCache(true)
			a.log.WithField("key", key).Debug("Analysis served from cache")
			return copyResult(v.(Result))
		}
		a.recordCache(false)
	}

	start := time.Now()
	res := Analyze(in, effective)
	elapsed := time.Since(start)

	if cacheable {
		a.cache.SetDefault(key, res)
	}
	if a.stats != nil {
		a.stats.RecordAnalysis(res.Score, string(res.Level))
	}
	a.metrics.RecordAnalysis(string(res.Level), res.Score, elapsed)
	a.log.WithFields(logrus.Fields{
		"slug":     in.Slug,
		"score":    res.Score,
		"level":    res.Level,
		"checks":   len(res.Checks),
		"duration": elapsed,
	}).Info("Content analyzed")

	return copyResult(res)
}

// AnalyzeJSON decodes raw as an Input and scores it like Analyze.
func (a *Analyzer) AnalyzeJSON(raw []byte, cfg *Config) Result {
	in, ok := decodeInput(raw)
	if !ok {
		a.log.Debug("Ignoring input that is not a JSON object")
		return emptyResult()
	}
	return a.Analyze(in, cfg)
}

// IsCached reports whether the result for in and cfg is in the cache.
func (a *Analyzer) IsCached(in *Input, cfg *Config) bool {
	if in == nil {
		return false
	}
	key, cacheable := a.cacheKey(in, a.config(cfg))
	if !cacheable {
		return false
	}
	_, found := a.cache.Get(key)
	return found
}

// ClearCache clears the analysis cache
func (a *Analyzer) ClearCache() {
	if a.cache != nil {
		a.cache.Flush()
	}
}

// GetCacheStats returns statistics about the cache
func (a *Analyzer) GetCacheStats() CacheStats {
	cs := CacheStats{TTL: a.cacheTTL}
	if a.cache != nil {
		cs.Entries = a.cache.ItemCount()
	}
	if a.stats != nil {
		current := a.stats.GetCurrentStats()
		cs.Hits = current.CacheHits
		cs.Misses = current.CacheMisses
		cs.Analyses = current.Analyses
		cs.AverageScore = current.AverageScore()
	}
	return cs
}

// GetStats returns the statistics storage instance
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown flushes the statistics and drops the cache.
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}
	a.ClearCache()
	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}
	return nil
}

// config returns the configuration of one call. A per-call configuration
// replaces the defaults but inherits their reference time.
func (a *Analyzer) config(cfg *Config) *Config {
	if cfg == nil {
		d := a.defaults
		return &d
	}
	c := *cfg
	if c.Now.IsZero() {
		c.Now = a.defaults.Now
	}
	return &c
}

// cacheKey hashes the input, the configuration and the reference day, since
// date-based rules change from one day to the next.
func (a *Analyzer) cacheKey(in *Input, cfg *Config) (string, bool) {
	if a.cache == nil {
		return "", false
	}
	day := cfg.Now
	if day.IsZero() {
		day = time.Now()
	}
	payload, err := json.Marshal(struct {
		Input  *Input  `json:"input"`
		Config *Config `json:"config"`
		Day    string  `json:"day"`
	}{in, cfg, day.UTC().Format("2006-01-02")})
	if err != nil {
		return "", false
	}
	return strconv.FormatUint(xxhash.Sum64(payload), 16), true
}

func (a *Analyzer) recordCache(hit bool) {
	if a.stats != nil {
		a.stats.RecordCache(hit)
	}
	a.metrics.RecordCache(hit)
}

func copyResult(r Result) Result {
	r.Checks = append([]Check{}, r.Checks...)
	return r
}
