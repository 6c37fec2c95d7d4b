// Package config loads the server settings from the environment and the rule
// configuration from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/seo-optimizer/contentscore/analyzer"
)

// AppConfig holds the settings of the HTTP service.
type AppConfig struct {
	Port           string
	GinMode        string
	DataDir        string
	RateLimit      float64 // requests per second and client
	RateBurst      int
	CacheTTL       time.Duration
	AnalysisConfig string // optional YAML rule configuration
	LogLevel       string
	LogFormat      string
	LogFile        string
	DevMode        bool
	RetainMonths   int
}

// LoadEnv reads .env.development, falling back to .env. It reports whether a
// file was found; variables already set in the environment win.
func LoadEnv() bool {
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			return false
		}
	}
	return true
}

// FromEnv builds the configuration from environment variables.
func FromEnv() (AppConfig, error) {
	cfg := AppConfig{
		Port:           getenv("PORT", "8082"),
		GinMode:        getenv("GIN_MODE", gin.ReleaseMode),
		DataDir:        getenv("DATA_DIR", "./data"),
		AnalysisConfig: os.Getenv("ANALYSIS_CONFIG"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
		LogFile:        os.Getenv("LOG_FILE"),
		DevMode:        os.Getenv("DEV_MODE") == "true",
	}

	var errs []error
	var err error
	if cfg.RateLimit, err = strconv.ParseFloat(getenv("RATE_LIMIT", "2"), 64); err != nil || cfg.RateLimit <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT must be a positive number"))
	}
	if cfg.RateBurst, err = strconv.Atoi(getenv("RATE_BURST", "5")); err != nil || cfg.RateBurst < 1 {
		errs = append(errs, errors.New("RATE_BURST must be a positive integer"))
	}
	if cfg.CacheTTL, err = time.ParseDuration(getenv("CACHE_TTL", "30m")); err != nil {
		errs = append(errs, fmt.Errorf("CACHE_TTL: %w", err))
	}
	if cfg.RetainMonths, err = strconv.Atoi(getenv("STATS_RETAIN_MONTHS", "12")); err != nil || cfg.RetainMonths < 1 {
		errs = append(errs, errors.New("STATS_RETAIN_MONTHS must be a positive integer"))
	}
	switch cfg.GinMode {
	case gin.ReleaseMode, gin.DebugMode, gin.TestMode:
	default:
		errs = append(errs, errors.New("GIN_MODE must be one of release, debug, test"))
	}

	return cfg, errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadAnalysisConfig reads a rule configuration file. An empty path returns
// the zero configuration.
func LoadAnalysisConfig(path string) (analyzer.Config, error) {
	if path == "" {
		return analyzer.Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return analyzer.Config{}, fmt.Errorf("failed to read analysis config: %w", err)
	}
	cfg, err := ParseAnalysisConfig(data)
	if err != nil {
		return analyzer.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseAnalysisConfig decodes a YAML rule configuration. Unknown keys are
// rejected.
func ParseAnalysisConfig(data []byte) (analyzer.Config, error) {
	var cfg analyzer.Config
	if err := UnmarshalStrict(data, &cfg); err != nil {
		return analyzer.Config{}, err
	}
	for group := range cfg.WeightOverrides {
		if !isGroup(group) {
			return analyzer.Config{}, fmt.Errorf("weightOverrides: unknown rule group %q", group)
		}
	}
	for _, group := range cfg.DisabledRules {
		if !isGroup(strings.ToLower(strings.TrimSpace(group))) {
			return analyzer.Config{}, fmt.Errorf("disabledRules: unknown rule group %q", group)
		}
	}
	return cfg, nil
}

func isGroup(name string) bool {
	for _, g := range analyzer.Groups() {
		if g == name {
			return true
		}
	}
	return false
}

// UnmarshalStrict decodes YAML into v and fails on unknown fields. An empty
// document leaves v untouched.
func UnmarshalStrict(data []byte, v interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		errStr := err.Error()
		if strings.Contains(errStr, "field") && strings.Contains(errStr, "not found") {
			return fmt.Errorf("unknown configuration field (check for typos): %w", err)
		}
		return err
	}
	return nil
}
