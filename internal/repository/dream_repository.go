//go:generate mockery --name DreamRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/model"

	"gorm.io/gorm"
)

type DreamRepository interface {
	// FindByUserAndPeriod は睡眠サイクル経由でユーザーに紐づく、指定月の夢を id 昇順で返します
	FindByUserAndPeriod(ctx context.Context, db *gorm.DB, userID uint, month, year int) ([]*model.Dream, error)
	FindTagsByDreamIDs(ctx context.Context, db *gorm.DB, dreamIDs []uint) (map[uint][]model.Tag, error)
}

type gormDreamRepository struct{}

func NewGormDreamRepository() DreamRepository {
	return &gormDreamRepository{}
}

func (r *gormDreamRepository) FindByUserAndPeriod(ctx context.Context, db *gorm.DB, userID uint, month, year int) ([]*model.Dream, error) {
	logger := middleware.GetLogger(ctx)
	start, end := model.MonthRange(month, year)

	var dreams []*model.Dream
	result := db.WithContext(ctx).
		Select("dreams.*").
		Joins("JOIN sleeps ON sleeps.id = dreams.sleep_id").
		Where("sleeps.user_id = ? AND sleeps.date >= ? AND sleeps.date < ?", userID, start, end).
		Order("dreams.id ASC").
		Find(&dreams)
	if result.Error != nil {
		logger.Error("Error finding dreams by user and period in DB",
			"error", result.Error,
			"user_id", userID,
			"month", month,
			"year", year,
		)
		return nil, fmt.Errorf("gormDreamRepository.FindByUserAndPeriod: %w", result.Error)
	}
	return dreams, nil
}

// dreamTagRow は dream_tags と tags の結合結果
type dreamTagRow struct {
	DreamID uint
	TagID   uint
	Title   string
}

func (r *gormDreamRepository) FindTagsByDreamIDs(ctx context.Context, db *gorm.DB, dreamIDs []uint) (map[uint][]model.Tag, error) {
	logger := middleware.GetLogger(ctx)
	tags := make(map[uint][]model.Tag, len(dreamIDs))
	if len(dreamIDs) == 0 {
		return tags, nil
	}

	var rows []dreamTagRow
	result := db.WithContext(ctx).
		Table("dream_tags").
		Select("dream_tags.dream_id, tags.id AS tag_id, tags.title").
		Joins("JOIN tags ON tags.id = dream_tags.tag_id").
		Where("dream_tags.dream_id IN ?", dreamIDs).
		Order("dream_tags.id ASC").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error finding tags by dream IDs in DB",
			"error", result.Error,
			"dream_count", len(dreamIDs),
		)
		return nil, fmt.Errorf("gormDreamRepository.FindTagsByDreamIDs: %w", result.Error)
	}

	for _, row := range rows {
		tags[row.DreamID] = append(tags[row.DreamID], model.Tag{ID: row.TagID, Title: row.Title})
	}
	return tags, nil
}
