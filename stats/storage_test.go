package stats

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestStorage(t *testing.T) {
	tempDir := t.TempDir()

	storage, err := NewStorage(tempDir, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Shutdown() })

	t.Run("RecordAnalysis", func(t *testing.T) {
		storage.RecordAnalysis(80, "good")
		storage.RecordAnalysis(40, "poor")
		storage.RecordCache(true)
		storage.RecordCache(false)
		storage.RecordCache(false)
		storage.RecordError()

		stats := storage.GetCurrentStats()
		assert.Equal(t, 2, stats.Analyses)
		assert.Equal(t, 1, stats.CacheHits)
		assert.Equal(t, 2, stats.CacheMisses)
		assert.Equal(t, 1, stats.Errors)
		assert.Equal(t, map[string]int{"good": 1, "poor": 1}, stats.Levels)
		assert.InDelta(t, 60.0, stats.AverageScore(), 0.001)
	})

	t.Run("ReturnedStatsAreCopies", func(t *testing.T) {
		stats := storage.GetCurrentStats()
		stats.Levels["good"] = 99
		assert.Equal(t, 1, storage.GetCurrentStats().Levels["good"])
	})

	t.Run("Persistence", func(t *testing.T) {
		require.NoError(t, storage.Flush())

		storage2, err := NewStorage(tempDir, quietLogger())
		require.NoError(t, err)
		defer storage2.Shutdown()

		stats := storage2.GetCurrentStats()
		assert.Equal(t, 2, stats.Analyses)
		assert.Equal(t, 1, stats.CacheHits)
	})

	t.Run("Cleanup", func(t *testing.T) {
		oldMonth := time.Now().AddDate(0, -2, 0).Format("2006-01")
		storage.mutex.Lock()
		storage.stats[oldMonth] = &MonthlyStats{Analyses: 100}
		storage.mutex.Unlock()

		storage.Cleanup(1)

		_, exists := storage.GetMonthlyStats(oldMonth)
		assert.False(t, exists, "old stats should have been cleaned up")
		assert.Equal(t, []string{time.Now().Format("2006-01")}, storage.GetAllMonths())
	})

	t.Run("FileSize", func(t *testing.T) {
		require.NoError(t, storage.Flush())

		info, err := os.Stat(filepath.Join(tempDir, "stats.json"))
		require.NoError(t, err)
		assert.Less(t, info.Size(), int64(1024))
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		before := storage.GetCurrentStats().Analyses

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					storage.RecordAnalysis(50, "ok")
					storage.GetCurrentStats()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, before+1000, storage.GetCurrentStats().Analyses)
	})
}

func TestCleanupRetainsMonths(t *testing.T) {
	storage, err := NewStorage(t.TempDir(), quietLogger())
	require.NoError(t, err)
	defer storage.Shutdown()

	storage.now = func() time.Time { return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) }
	for _, month := range []string{"2025-12", "2026-01", "2026-02", "2026-03"} {
		storage.stats[month] = &MonthlyStats{Analyses: 1}
	}

	storage.Cleanup(3)

	assert.Equal(t, []string{"2026-03", "2026-02", "2026-01"}, storage.GetAllMonths())
}

func TestShutdownIsIdempotent(t *testing.T) {
	storage, err := NewStorage(t.TempDir(), quietLogger())
	require.NoError(t, err)

	storage.RecordAnalysis(90, "good")
	require.NoError(t, storage.Shutdown())
	assert.NoError(t, storage.Shutdown())
}
