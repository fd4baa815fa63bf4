//go:generate mockery --name DreamAnalysisRepository --output ./mocks --outpkg mocks --case=underscore
//go:generate mockery --name SleepAnalysisRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DreamAnalysisRepository は夢の分析の保存先。
// FindLatest + Create/Update が通常の保存方法、Upsert はユニーク制約を前提とした保存方法
type DreamAnalysisRepository interface {
	FindLatest(ctx context.Context, db *gorm.DB, userID uint, month, year int) (*model.DreamAnalysis, error)
	Create(ctx context.Context, tx *gorm.DB, analysis *model.DreamAnalysis) error
	Update(ctx context.Context, tx *gorm.DB, analysis *model.DreamAnalysis) error
	Upsert(ctx context.Context, tx *gorm.DB, analysis *model.DreamAnalysis) error
}

type SleepAnalysisRepository interface {
	FindLatest(ctx context.Context, db *gorm.DB, userID uint, month, year int) (*model.SleepAnalysis, error)
	Create(ctx context.Context, tx *gorm.DB, analysis *model.SleepAnalysis) error
	Update(ctx context.Context, tx *gorm.DB, analysis *model.SleepAnalysis) error
	Upsert(ctx context.Context, tx *gorm.DB, analysis *model.SleepAnalysis) error
}

// 競合時に上書きするカラム (id, user_id, month, year, created_at 以外)
var dreamAnalysisUpdateColumns = []string{
	"most_point_of_view_occurence",
	"most_hour_occurence",
	"most_duration_occurence",
	"most_lucidity_level_occurence",
	"most_dream_type_occurence",
	"most_reality_level_occurence",
	"most_dream_origin_occurence",
	"most_climate_occurence",
	"erotic_dreams_average",
	"tag_per_dream_average",
	"longest_dream_title",
	"updated_at",
}

var sleepAnalysisUpdateColumns = []string{
	"dreams_count",
	"good_wake_up_humor_percentage",
	"bad_wake_up_humor_percentage",
	"good_lay_down_humor_percentage",
	"bad_lay_down_humor_percentage",
	"most_frequent_wake_up_humor",
	"least_frequent_wake_up_humor",
	"most_frequent_lay_down_humor",
	"least_frequent_lay_down_humor",
	"most_frequent_biological_occurence",
	"least_frequent_biological_occurence",
	"most_sleep_duration",
	"least_sleep_duration",
	"average_dream_per_sleep",
	"sleep_duration_average",
	"most_dreams_per_sleep_date",
	"updated_at",
}

var periodConflictColumns = []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}}

// findLatestAnalysis は (user_id, month, year) に一致する行のうち id が最大のものを返します
func findLatestAnalysis[T any](ctx context.Context, db *gorm.DB, userID uint, month, year int) (*T, error) {
	var row T
	err := db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("id DESC").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func upsertAnalysis[T any](ctx context.Context, tx *gorm.DB, row *T, updateColumns []string) error {
	return tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   periodConflictColumns,
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}).
		Create(row).Error
}

type gormDreamAnalysisRepository struct{}

func NewGormDreamAnalysisRepository() DreamAnalysisRepository {
	return &gormDreamAnalysisRepository{}
}

func (r *gormDreamAnalysisRepository) FindLatest(ctx context.Context, db *gorm.DB, userID uint, month, year int) (*model.DreamAnalysis, error) {
	analysis, err := findLatestAnalysis[model.DreamAnalysis](ctx, db, userID, month, year)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		middleware.GetLogger(ctx).Error("Error finding dream analysis in DB",
			"error", err,
			"user_id", userID,
			"month", month,
			"year", year,
		)
		return nil, fmt.Errorf("gormDreamAnalysisRepository.FindLatest: %w", err)
	}
	return analysis, err
}

func (r *gormDreamAnalysisRepository) Create(ctx context.Context, tx *gorm.DB, analysis *model.DreamAnalysis) error {
	if err := tx.WithContext(ctx).Create(analysis).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating dream analysis in DB", "error", err, "user_id", analysis.UserID)
		return fmt.Errorf("gormDreamAnalysisRepository.Create: %w", err)
	}
	return nil
}

// Update は analysis.ID の行を全カラム上書きします (呼び出し元で存在確認済み想定)
func (r *gormDreamAnalysisRepository) Update(ctx context.Context, tx *gorm.DB, analysis *model.DreamAnalysis) error {
	if err := tx.WithContext(ctx).Save(analysis).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error updating dream analysis in DB", "error", err, "analysis_id", analysis.ID)
		return fmt.Errorf("gormDreamAnalysisRepository.Update: %w", err)
	}
	return nil
}

func (r *gormDreamAnalysisRepository) Upsert(ctx context.Context, tx *gorm.DB, analysis *model.DreamAnalysis) error {
	if err := upsertAnalysis(ctx, tx, analysis, dreamAnalysisUpdateColumns); err != nil {
		middleware.GetLogger(ctx).Error("Error upserting dream analysis in DB", "error", err, "user_id", analysis.UserID)
		return fmt.Errorf("gormDreamAnalysisRepository.Upsert: %w", err)
	}
	return nil
}

type gormSleepAnalysisRepository struct{}

func NewGormSleepAnalysisRepository() SleepAnalysisRepository {
	return &gormSleepAnalysisRepository{}
}

func (r *gormSleepAnalysisRepository) FindLatest(ctx context.Context, db *gorm.DB, userID uint, month, year int) (*model.SleepAnalysis, error) {
	analysis, err := findLatestAnalysis[model.SleepAnalysis](ctx, db, userID, month, year)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		middleware.GetLogger(ctx).Error("Error finding sleep analysis in DB",
			"error", err,
			"user_id", userID,
			"month", month,
			"year", year,
		)
		return nil, fmt.Errorf("gormSleepAnalysisRepository.FindLatest: %w", err)
	}
	return analysis, err
}

func (r *gormSleepAnalysisRepository) Create(ctx context.Context, tx *gorm.DB, analysis *model.SleepAnalysis) error {
	if err := tx.WithContext(ctx).Create(analysis).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating sleep analysis in DB", "error", err, "user_id", analysis.UserID)
		return fmt.Errorf("gormSleepAnalysisRepository.Create: %w", err)
	}
	return nil
}

func (r *gormSleepAnalysisRepository) Update(ctx context.Context, tx *gorm.DB, analysis *model.SleepAnalysis) error {
	if err := tx.WithContext(ctx).Save(analysis).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error updating sleep analysis in DB", "error", err, "analysis_id", analysis.ID)
		return fmt.Errorf("gormSleepAnalysisRepository.Update: %w", err)
	}
	return nil
}

func (r *gormSleepAnalysisRepository) Upsert(ctx context.Context, tx *gorm.DB, analysis *model.SleepAnalysis) error {
	if err := upsertAnalysis(ctx, tx, analysis, sleepAnalysisUpdateColumns); err != nil {
		middleware.GetLogger(ctx).Error("Error upserting sleep analysis in DB", "error", err, "user_id", analysis.UserID)
		return fmt.Errorf("gormSleepAnalysisRepository.Upsert: %w", err)
	}
	return nil
}
