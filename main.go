package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/seo-optimizer/contentscore/analyzer"
	"github.com/seo-optimizer/contentscore/api"
	"github.com/seo-optimizer/contentscore/config"
	"github.com/seo-optimizer/contentscore/logging"
	"github.com/seo-optimizer/contentscore/metrics"
	"github.com/seo-optimizer/contentscore/middleware"
	"github.com/seo-optimizer/contentscore/stats"
)

const maintenanceInterval = time.Hour

func setupGinMode(mode string) {
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	foundEnv := config.LoadEnv()

	cfg, err := config.FromEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to set up logging")
	}
	if !foundEnv {
		log.Info("No .env file found, using environment variables")
	}

	setupGinMode(cfg.GinMode)

	rules, err := config.LoadAnalysisConfig(cfg.AnalysisConfig)
	if err != nil {
		log.WithError(err).Fatal("Failed to load analysis configuration")
	}

	storage, err := stats.NewStorage(cfg.DataDir, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize statistics")
	}

	collector := metrics.NewCollector("contentscore")
	seoAnalyzer := analyzer.New(analyzer.Options{
		CacheTTL: cfg.CacheTTL,
		Defaults: rules,
		Stats:    storage,
		Metrics:  collector,
		Logger:   log,
	})
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, collector)
	traffic := logging.NewTraffic()

	router := api.NewRouter(api.Options{
		Analyzer:    seoAnalyzer,
		Logger:      log,
		Traffic:     traffic,
		Stats:       storage,
		Metrics:     collector,
		RateLimiter: rateLimiter,
		DevMode:     cfg.DevMode,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go maintain(ctx, log, rateLimiter, traffic, storage, cfg.RetainMonths)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	if err := seoAnalyzer.Shutdown(); err != nil {
		log.WithError(err).Error("Analyzer shutdown failed")
	}
}

// maintain periodically drops idle rate limiter clients, old visitors and
// expired monthly statistics until ctx is done.
func maintain(ctx context.Context, log *logrus.Logger, limiter *middleware.RateLimiter, traffic *logging.Traffic, storage *stats.Storage, retainMonths int) {
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := limiter.Cleanup(maintenanceInterval)
			traffic.Prune()
			storage.Cleanup(retainMonths)
			log.WithField("idle_clients", removed).Debug("Maintenance done")
		}
	}
}
