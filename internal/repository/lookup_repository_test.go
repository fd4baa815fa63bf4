package repository

import (
	"context"
	"testing"

	"go_dream_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormLookupRepository_FindDescriptions(t *testing.T) {
	ctx := context.Background()
	repo := NewGormLookupRepository()
	db := setupTestDB(t, false)

	for _, dim := range model.LookupDimensions {
		descriptions, err := repo.FindDescriptions(ctx, db, dim)
		require.NoError(t, err, dim)
		assert.Len(t, descriptions, len(lookupSeeds[dim]), dim)
		assert.Equal(t, lookupSeeds[dim][0], descriptions[1], dim)
	}
}

func TestSeedLookups_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, false)

	// 2回目のシードで行が増えないこと
	require.NoError(t, SeedLookups(ctx, db))

	var count int64
	require.NoError(t, db.Table(model.DimensionPointOfView.TableName()).Count(&count).Error)
	assert.EqualValues(t, len(lookupSeeds[model.DimensionPointOfView]), count)
}
