package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_dream_keep/internal/config"
	"go_dream_keep/internal/model"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/driver/sqlite"                 // ローカル実行用
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// インスタンス
func NewDB(cfg config.DatabaseConfig, appLogger *slog.Logger) (*gorm.DB, error) {

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond), // 遅いクエリの閾値
	)
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Driver) {
	case "sqlite":
		dialector = sqlite.Open(cfg.URL)
	case "postgres", "":
		dialector = postgres.Open(cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	// === GORM 接続設定 ===
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         finalGormLogger,
		TranslateError: true, // 一意制約違反を gorm.ErrDuplicatedKey に変換する
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err), slog.String("driver", cfg.Driver))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close() // Ping失敗時はここでClose
		return nil, err
	}

	// コネクションプールの設定
	if dialector.Name() == "sqlite" {
		// SQLite は書き込みが直列なので1本に絞る
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", dialector.Name()))
	return db, nil
}

// Migrate はテーブルを作成・更新します。
// strictUpsert が true の場合、分析テーブルに (user_id, month, year) のユニーク制約を張る
func Migrate(db *gorm.DB, strictUpsert bool) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Sleep{},
		&model.Dream{},
		&model.Tag{},
		&model.DreamTag{},
		&model.DreamAnalysis{},
		&model.SleepAnalysis{},
	)
	if err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}

	for _, dim := range model.LookupDimensions {
		if err := db.Table(dim.TableName()).AutoMigrate(&model.Lookup{}); err != nil {
			return fmt.Errorf("repository.Migrate %s: %w", dim, err)
		}
	}

	if strictUpsert {
		// 既に重複行がある場合は失敗する。古い重複は手動で整理すること
		stmts := []string{
			"CREATE UNIQUE INDEX IF NOT EXISTS uq_dream_analyses_period ON dream_analyses (user_id, month, year)",
			"CREATE UNIQUE INDEX IF NOT EXISTS uq_sleep_analyses_period ON sleep_analyses (user_id, month, year)",
		}
		for _, stmt := range stmts {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("repository.Migrate unique index: %w", err)
			}
		}
	}
	return nil
}
