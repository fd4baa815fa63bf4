//go:generate mockery --name SleepRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/model"

	"gorm.io/gorm"
)

type SleepRepository interface {
	Create(ctx context.Context, db *gorm.DB, sleep *model.Sleep) error
	// FindByUserAndPeriod は指定月の睡眠サイクルを日付順に返します (夢のない睡眠も含む)
	FindByUserAndPeriod(ctx context.Context, db *gorm.DB, userID uint, month, year int) ([]*model.Sleep, error)
	FindDreamIDsBySleepIDs(ctx context.Context, db *gorm.DB, sleepIDs []uint) (map[uint][]uint, error)
}

type gormSleepRepository struct{}

func NewGormSleepRepository() SleepRepository {
	return &gormSleepRepository{}
}

func (r *gormSleepRepository) Create(ctx context.Context, db *gorm.DB, sleep *model.Sleep) error {
	logger := middleware.GetLogger(ctx)
	// BeforeSave フックで開始・終了時刻と気分フラグを検証する
	if err := db.WithContext(ctx).Create(sleep).Error; err != nil {
		logger.Error("Error creating sleep in DB",
			"error", err,
			"user_id", sleep.UserID,
		)
		return fmt.Errorf("gormSleepRepository.Create: %w", err)
	}
	return nil
}

func (r *gormSleepRepository) FindByUserAndPeriod(ctx context.Context, db *gorm.DB, userID uint, month, year int) ([]*model.Sleep, error) {
	logger := middleware.GetLogger(ctx)
	start, end := model.MonthRange(month, year)

	var sleeps []*model.Sleep
	result := db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC, id ASC").
		Find(&sleeps)
	if result.Error != nil {
		logger.Error("Error finding sleeps by user and period in DB",
			"error", result.Error,
			"user_id", userID,
			"month", month,
			"year", year,
		)
		return nil, fmt.Errorf("gormSleepRepository.FindByUserAndPeriod: %w", result.Error)
	}
	return sleeps, nil
}

func (r *gormSleepRepository) FindDreamIDsBySleepIDs(ctx context.Context, db *gorm.DB, sleepIDs []uint) (map[uint][]uint, error) {
	logger := middleware.GetLogger(ctx)
	ids := make(map[uint][]uint, len(sleepIDs))
	if len(sleepIDs) == 0 {
		return ids, nil
	}

	var rows []struct {
		ID      uint
		SleepID uint
	}
	result := db.WithContext(ctx).
		Model(&model.Dream{}).
		Select("id, sleep_id").
		Where("sleep_id IN ?", sleepIDs).
		Order("id ASC").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error finding dream IDs by sleep IDs in DB",
			"error", result.Error,
			"sleep_count", len(sleepIDs),
		)
		return nil, fmt.Errorf("gormSleepRepository.FindDreamIDsBySleepIDs: %w", result.Error)
	}

	for _, row := range rows {
		ids[row.SleepID] = append(ids[row.SleepID], row.ID)
	}
	return ids, nil
}
