package repository

import (
	"context"
	"fmt"

	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lookupSeeds は参照テーブルの初期データ。IDは並び順 (1始まり)
var lookupSeeds = map[model.LookupDimension][]string{
	model.DimensionPointOfView:   {"First person", "Second person", "Third person", "Observer"},
	model.DimensionHour:          {"Early night", "Late night", "Dawn", "Morning", "Afternoon nap", "Undefined"},
	model.DimensionDuration:      {"Instant", "Short", "Medium", "Long", "Undefined"},
	model.DimensionLucidityLevel: {"Not lucid", "Semi-lucid", "Lucid", "Undefined"},
	model.DimensionType:          {"Common", "Nightmare", "Recurring", "Premonitory", "Other"},
	model.DimensionRealityLevel:  {"Realistic", "Partially realistic", "Surreal", "Undefined"},
	model.DimensionOrigin:        {"Complete", "Fragmented", "Reconstructed"},
}

// SeedLookups は参照テーブルに初期データを投入します (既存IDはスキップ)
func SeedLookups(ctx context.Context, db *gorm.DB) error {
	logger := middleware.GetLogger(ctx)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dim := range model.LookupDimensions {
			descriptions := lookupSeeds[dim]
			rows := make([]model.Lookup, len(descriptions))
			for i, d := range descriptions {
				rows[i] = model.Lookup{ID: uint(i + 1), Description: d}
			}
			result := tx.Table(dim.TableName()).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
			if result.Error != nil {
				logger.Error("Error seeding lookup table", "error", result.Error, "table", dim.TableName())
				return fmt.Errorf("repository.SeedLookups %s: %w", dim, result.Error)
			}
			logger.Debug("Lookup table seeded", "table", dim.TableName(), "inserted", result.RowsAffected)
		}
		return nil
	})
}
