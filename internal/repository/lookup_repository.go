//go:generate mockery --name LookupRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/model"

	"gorm.io/gorm"
)

// LookupRepository は参照テーブルの id → 説明文 を引きます
type LookupRepository interface {
	FindDescriptions(ctx context.Context, db *gorm.DB, dim model.LookupDimension) (map[uint]string, error)
}

type gormLookupRepository struct{}

func NewGormLookupRepository() LookupRepository {
	return &gormLookupRepository{}
}

func (r *gormLookupRepository) FindDescriptions(ctx context.Context, db *gorm.DB, dim model.LookupDimension) (map[uint]string, error) {
	logger := middleware.GetLogger(ctx)

	var rows []model.Lookup
	if err := db.WithContext(ctx).Table(dim.TableName()).Find(&rows).Error; err != nil {
		logger.Error("Error finding lookup descriptions in DB", "error", err, "table", dim.TableName())
		return nil, fmt.Errorf("gormLookupRepository.FindDescriptions: %w", err)
	}

	descriptions := make(map[uint]string, len(rows))
	for _, row := range rows {
		descriptions[row.ID] = row.Description
	}
	return descriptions, nil
}
