package repository

import (
	"context"
	"testing"
	"time"

	"go_dream_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormDreamRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormDreamRepository()
	db := setupTestDB(t, false)

	user := createTestUser(t, db, "dreamer")
	other := createTestUser(t, db, "other")

	march := createTestSleep(t, db, user.ID, day(2024, time.March, 5), 8)
	april := createTestSleep(t, db, user.ID, day(2024, time.April, 5), 8)
	othersMarch := createTestSleep(t, db, other.ID, day(2024, time.March, 5), 8)

	d1 := createTestDream(t, db, march.ID, "falling")
	d2 := createTestDream(t, db, march.ID, "flying")
	createTestDream(t, db, april.ID, "april dream")
	createTestDream(t, db, othersMarch.ID, "someone else")

	tagA := &model.Tag{Title: "sea"}
	tagB := &model.Tag{Title: "school"}
	require.NoError(t, db.Create(tagA).Error)
	require.NoError(t, db.Create(tagB).Error)
	require.NoError(t, db.Create(&model.DreamTag{DreamID: d1.ID, TagID: tagA.ID}).Error)
	require.NoError(t, db.Create(&model.DreamTag{DreamID: d1.ID, TagID: tagB.ID}).Error)

	t.Run("正常系: 睡眠日の月とユーザーで絞り込む", func(t *testing.T) {
		dreams, err := repo.FindByUserAndPeriod(ctx, db, user.ID, 3, 2024)
		require.NoError(t, err)
		require.Len(t, dreams, 2)
		assert.Equal(t, d1.ID, dreams[0].ID)
		assert.Equal(t, d2.ID, dreams[1].ID)
		assert.True(t, dreams[0].Climate.Data().Rain)
	})

	t.Run("正常系: 夢ごとのタグ", func(t *testing.T) {
		tags, err := repo.FindTagsByDreamIDs(ctx, db, []uint{d1.ID, d2.ID})
		require.NoError(t, err)
		require.Len(t, tags[d1.ID], 2)
		assert.Equal(t, "sea", tags[d1.ID][0].Title)
		assert.Empty(t, tags[d2.ID])
	})

	t.Run("正常系: 該当なしは空", func(t *testing.T) {
		dreams, err := repo.FindByUserAndPeriod(ctx, db, user.ID, 1, 2023)
		require.NoError(t, err)
		assert.Empty(t, dreams)
	})
}
