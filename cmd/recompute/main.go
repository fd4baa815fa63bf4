// cmd/recompute/main.go
//
// 全ユーザーの指定月の夢・睡眠の分析を作り直すバッチ
//
//	go run ./cmd/recompute -month 3 -year 2024
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_dream_keep/internal/config"
	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/repository"
	"go_dream_keep/internal/service"
)

func main() {
	now := time.Now()
	month := flag.Int("month", int(now.Month()), "対象の月 (1-12)")
	year := flag.Int("year", now.Year(), "対象の年")
	configPath := flag.String("config", "configs", "config.yaml のディレクトリ")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := config.NewLogger(config.Cfg.Log)
	slog.SetDefault(logger)

	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := repository.Migrate(db, config.Cfg.Analysis.StrictUpsert); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = middleware.WithLogger(ctx, logger.With("job", "recompute"))

	if err := repository.SeedLookups(ctx, db); err != nil {
		slog.Error("Error seeding lookup tables", slog.Any("error", err))
		os.Exit(1)
	}

	userRepo := repository.NewGormUserRepository()
	dreamService := service.NewDreamAnalysisService(
		db,
		userRepo,
		repository.NewGormDreamRepository(),
		repository.NewGormLookupRepository(),
		repository.NewGormDreamAnalysisRepository(),
		config.Cfg.Analysis,
	)
	sleepService := service.NewSleepAnalysisService(
		db,
		userRepo,
		repository.NewGormSleepRepository(),
		repository.NewGormSleepAnalysisRepository(),
		config.Cfg.Analysis,
	)
	recomputeService := service.NewRecomputeService(db, userRepo, dreamService, sleepService, config.Cfg.Analysis.RecomputeConcurrency)

	summary, err := recomputeService.RecomputeMonth(ctx, *month, *year)
	if err != nil {
		slog.Error("Recompute failed", slog.Any("error", err))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		slog.Error("Error writing summary", slog.Any("error", err))
		os.Exit(1)
	}
}
