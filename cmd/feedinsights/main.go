// Command feedinsights runs one feed insights query and prints the JSON
// payload. It connects to Postgres when a DSN is configured and falls back
// to a seeded in-memory dataset otherwise, which makes it handy for tuning
// ranking weights locally.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"marketloop-backend/application/queries"
	"marketloop-backend/application/services"
	"marketloop-backend/infrastructure/config"
	"marketloop-backend/infrastructure/di"
	"marketloop-backend/infrastructure/persistence/gormdb"
	"marketloop-backend/pkg/observability"
)

func main() {
	var (
		viewerID = flag.Int64("viewer", 0, "viewer user id (0 for anonymous)")
		limit    = flag.Int("limit", 0, "suggestion limit (0 for default)")
		dsn      = flag.String("dsn", "", "Postgres DSN (overrides DATABASE_DSN; empty for demo data)")
		timeout  = flag.Duration("timeout", 10*time.Second, "overall request timeout")
	)
	flag.Parse()

	if err := run(*viewerID, *limit, *dsn, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, "feedinsights:", err)
		os.Exit(1)
	}
}

func run(viewerID int64, limit int, dsnFlag string, timeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var metrics *observability.Collector
	if cfg.EnableMetrics {
		metrics = observability.NewCollector(cfg.MetricsNamespace)
	}

	if cfg.EnableTracing {
		tp, err := observability.InitTracing("feedinsights", cfg.Environment, cfg.TracingEndpoint)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	tuning := services.StaticTuning(cfg.Ranking.Tuning())
	if cfg.RankingConfigPath != "" {
		watcher, err := config.NewRankingWatcher(cfg.RankingConfigPath, logger)
		if err != nil {
			return err
		}
		watcher.Start()
		defer watcher.Stop()
		tuning = watcher.TuningProvider()
	}

	dsn := dsnFlag
	if dsn == "" {
		dsn = cfg.DatabaseDSN
	}

	var stores di.Stores
	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		stores = di.GormStores(gormdb.NewStore(db, logger))
	} else {
		logger.Info("No DSN configured, using seeded demo data")
		stores = di.MemoryStores(seedDemoStore())
	}

	handler := di.InitializeFeedInsightsHandler(stores, tuning, metrics, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	query := queries.FeedInsightsQuery{Limit: limit}
	if viewerID > 0 {
		query.ViewerID = &viewerID
	}

	result, err := handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if cfg.Environment == "development" {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		return zcfg.Build()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
