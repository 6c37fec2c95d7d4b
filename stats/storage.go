package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// MonthlyStats represents the analysis activity of one month
type MonthlyStats struct {
	Analyses    int            `json:"analyses"`
	CacheHits   int            `json:"cache_hits"`
	CacheMisses int            `json:"cache_misses"`
	Errors      int            `json:"errors"`
	ScoreTotal  int            `json:"score_total"`
	Levels      map[string]int `json:"levels"`
	LastUpdated time.Time      `json:"last_updated"`
}

// AverageScore returns the mean score of the month's analyses.
func (m MonthlyStats) AverageScore() float64 {
	if m.Analyses == 0 {
		return 0
	}
	return float64(m.ScoreTotal) / float64(m.Analyses)
}

func (m MonthlyStats) clone() MonthlyStats {
	levels := make(map[string]int, len(m.Levels))
	for k, v := range m.Levels {
		levels[k] = v
	}
	m.Levels = levels
	return m
}

// Storage handles persistent storage of statistics
type Storage struct {
	mutex       sync.RWMutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	done        chan struct{}
	stopped     sync.WaitGroup
	closeOnce   sync.Once
	log         *logrus.Entry
	now         func() time.Time
}

// NewStorage creates a new statistics storage instance persisted under dataDir.
func NewStorage(dataDir string, logger *logrus.Logger) (*Storage, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, "stats.json"),
		writeBuffer: make(chan struct{}, 1),
		done:        make(chan struct{}),
		log:         logger.WithField("component", "stats"),
		now:         time.Now,
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	s.stopped.Add(1)
	go s.backgroundWriter()

	return s, nil
}

// load reads statistics from file
func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

// save writes statistics to file
func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	// Write to temporary file first
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	// Rename temporary file to actual file (atomic operation)
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// backgroundWriter handles periodic writes to disk until Shutdown
func (s *Storage) backgroundWriter() {
	defer s.stopped.Done()
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
		case <-ticker.C:
		case <-s.done:
			return
		}
		if err := s.save(); err != nil {
			s.log.WithError(err).Warn("Failed to persist statistics")
		}
	}
}

func (s *Storage) currentMonth() string {
	return s.now().Format("2006-01")
}

// requestWrite signals that a write to disk is needed
func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
		// write already pending
	}
}

// update applies fn to the current month's statistics. Callers must not hold
// the mutex.
func (s *Storage) update(fn func(m *MonthlyStats)) {
	month := s.currentMonth()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	m, exists := s.stats[month]
	if !exists {
		m = &MonthlyStats{}
		s.stats[month] = m
	}
	if m.Levels == nil {
		m.Levels = make(map[string]int)
	}
	fn(m)
	m.LastUpdated = s.now()

	// Request a write if enough time has passed
	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

// RecordAnalysis counts one computed analysis with its score and level.
func (s *Storage) RecordAnalysis(score int, level string) {
	s.update(func(m *MonthlyStats) {
		m.Analyses++
		m.ScoreTotal += score
		m.Levels[level]++
	})
}

// RecordCache counts one lookup of the result cache.
func (s *Storage) RecordCache(hit bool) {
	s.update(func(m *MonthlyStats) {
		if hit {
			m.CacheHits++
		} else {
			m.CacheMisses++
		}
	})
}

// RecordError counts one rejected analysis request.
func (s *Storage) RecordError() {
	s.update(func(m *MonthlyStats) { m.Errors++ })
}

// GetCurrentStats returns statistics for the current month
func (s *Storage) GetCurrentStats() MonthlyStats {
	month := s.currentMonth()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.stats[month]; exists {
		return m.clone()
	}
	return MonthlyStats{Levels: map[string]int{}}
}

// Cleanup removes statistics older than the specified number of months. The
// current month is always kept.
func (s *Storage) Cleanup(retainMonths int) {
	if retainMonths < 1 {
		retainMonths = 1
	}
	now := s.now()
	keep := make(map[string]struct{}, retainMonths)
	for i := 0; i < retainMonths; i++ {
		keep[now.AddDate(0, -i, 0).Format("2006-01")] = struct{}{}
	}

	s.mutex.Lock()
	removed := 0
	for key := range s.stats {
		if _, ok := keep[key]; !ok {
			delete(s.stats, key)
			removed++
		}
	}
	s.mutex.Unlock()

	s.requestWrite()
	s.log.WithFields(logrus.Fields{"retain_months": retainMonths, "removed": removed}).Debug("Cleaned up statistics")
}

// GetMonthlyStats returns statistics for a specific month
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.stats[yearMonth]; exists {
		return m.clone(), true
	}
	return MonthlyStats{}, false
}

// GetAllMonths returns a sorted list of all months that have statistics
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}

	// newest first
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}

// Flush writes the statistics to disk immediately.
func (s *Storage) Flush() error {
	return s.save()
}

// Shutdown stops the background writer and persists the statistics one last
// time. It is safe to call more than once.
func (s *Storage) Shutdown() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		s.stopped.Wait()
		err = s.save()
	})
	return err
}
