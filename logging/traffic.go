package logging

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// EnvDevMode is the environment variable that exposes detailed statistics.
const EnvDevMode = "DEV_MODE"

// Traffic collects request statistics of the running process.
type Traffic struct {
	mutex            sync.RWMutex
	uniqueVisitors   map[string]time.Time // IP -> last visit
	analysisRequests int
	errorCount       int
	popularSlugs     map[string]int
	totalLoadTime    float64
	now              func() time.Time
}

// NewTraffic returns empty traffic statistics.
func NewTraffic() *Traffic {
	return &Traffic{
		uniqueVisitors: make(map[string]time.Time),
		popularSlugs:   make(map[string]int),
		now:            time.Now,
	}
}

// TrackVisitor records a visit from ip.
func (t *Traffic) TrackVisitor(ip string) {
	if ip == "" {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.uniqueVisitors[ip] = t.now()
}

// cleanSlug reduces a page slug to its lowercase path without slashes at
// either end. The home page is "/".
func cleanSlug(slug string) string {
	s := strings.Trim(strings.ToLower(strings.TrimSpace(slug)), "/")
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "/"
	}
	return s
}

// TrackAnalysis records one analysis request for slug and its load time in
// milliseconds.
func (t *Traffic) TrackAnalysis(slug string, loadTime float64, hasError bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.analysisRequests++
	if hasError {
		t.errorCount++
		return
	}
	t.popularSlugs[cleanSlug(slug)]++
	t.totalLoadTime += loadTime
}

// UniqueVisitors returns the number of visitors seen in the last 24 hours.
func (t *Traffic) UniqueVisitors() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.uniqueVisitorsLocked()
}

func (t *Traffic) uniqueVisitorsLocked() int {
	cutoff := t.now().Add(-24 * time.Hour)
	count := 0
	for _, lastVisit := range t.uniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}
	return count
}

// Prune forgets visitors not seen in the last 24 hours.
func (t *Traffic) Prune() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	cutoff := t.now().Add(-24 * time.Hour)
	for ip, lastVisit := range t.uniqueVisitors {
		if !lastVisit.After(cutoff) {
			delete(t.uniqueVisitors, ip)
		}
	}
}

// SlugCount is the number of analyses of one slug.
type SlugCount struct {
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// PopularSlugs returns the n most analyzed slugs, most analyzed first.
func (t *Traffic) PopularSlugs(n int) []SlugCount {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.popularSlugsLocked(n)
}

func (t *Traffic) popularSlugsLocked(n int) []SlugCount {
	all := make([]SlugCount, 0, len(t.popularSlugs))
	for slug, count := range t.popularSlugs {
		all = append(all, SlugCount{Slug: slug, Count: count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Slug < all[j].Slug
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// Snapshot returns the statistics served by the API. Popular slugs are only
// included in development mode.
func (t *Traffic) Snapshot(devMode bool) map[string]interface{} {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	errorRate, averageLoadTime := 0.0, 0.0
	if t.analysisRequests > 0 {
		errorRate = float64(t.errorCount) / float64(t.analysisRequests) * 100
	}
	if ok := t.analysisRequests - t.errorCount; ok > 0 {
		averageLoadTime = t.totalLoadTime / float64(ok)
	}

	out := map[string]interface{}{
		"uniqueVisitors24h": t.uniqueVisitorsLocked(),
		"totalRequests":     t.analysisRequests,
		"errorRate":         errorRate,
		"averageLoadTime":   averageLoadTime,
	}
	if devMode {
		out["popularSlugs"] = t.popularSlugsLocked(5)
	}
	return out
}
