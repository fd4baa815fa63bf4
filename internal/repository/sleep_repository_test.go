package repository

import (
	"context"
	"testing"
	"time"

	"go_dream_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestGormSleepRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewGormSleepRepository()

	t.Run("正常系: SleepTimeとDateが導出される", func(t *testing.T) {
		db := setupTestDB(t, false)
		user := createTestUser(t, db, "sleeper")
		start := time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)
		sleep := &model.Sleep{
			UserID:               user.ID,
			SleepStart:           start,
			SleepEnd:             start.Add(7*time.Hour + 30*time.Minute),
			WakeUpHumor:          datatypes.NewJSONType(model.Humor{Happiness: true}),
			LayDownHumor:         datatypes.NewJSONType(model.Humor{Undefined: true}),
			BiologicalOccurences: datatypes.NewJSONType(model.BiologicalOccurences{Snoring: true}),
		}
		require.NoError(t, repo.Create(ctx, db, sleep))

		assert.InDelta(t, 7.5, sleep.SleepTime, 1e-9)
		assert.Equal(t, day(2024, time.March, 4), sleep.Date)
	})

	t.Run("異常系: 開始が終了より後", func(t *testing.T) {
		db := setupTestDB(t, false)
		user := createTestUser(t, db, "sleeper")
		start := time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)
		sleep := &model.Sleep{
			UserID:     user.ID,
			SleepStart: start,
			SleepEnd:   start.Add(-time.Hour),
		}
		err := repo.Create(ctx, db, sleep)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: undefinedと他の気分の併用", func(t *testing.T) {
		db := setupTestDB(t, false)
		user := createTestUser(t, db, "sleeper")
		start := time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)
		sleep := &model.Sleep{
			UserID:      user.ID,
			SleepStart:  start,
			SleepEnd:    start.Add(time.Hour),
			WakeUpHumor: datatypes.NewJSONType(model.Humor{Undefined: true, Calm: true}),
		}
		err := repo.Create(ctx, db, sleep)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestGormSleepRepository_FindByUserAndPeriod(t *testing.T) {
	ctx := context.Background()
	repo := NewGormSleepRepository()
	db := setupTestDB(t, false)

	user := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")

	later := createTestSleep(t, db, user.ID, day(2024, time.March, 20), 6)
	earlier := createTestSleep(t, db, user.ID, day(2024, time.March, 2), 8)
	// 前後の月は対象外
	createTestSleep(t, db, user.ID, day(2024, time.April, 1), 7)
	createTestSleep(t, db, user.ID, day(2024, time.February, 29), 7)
	createTestSleep(t, db, other.ID, day(2024, time.March, 10), 5)

	// 夢が2つある睡眠も1行で返ること
	createTestDream(t, db, later.ID, "first")
	createTestDream(t, db, later.ID, "second")

	sleeps, err := repo.FindByUserAndPeriod(ctx, db, user.ID, 3, 2024)
	require.NoError(t, err)
	require.Len(t, sleeps, 2)
	assert.Equal(t, earlier.ID, sleeps[0].ID)
	assert.Equal(t, later.ID, sleeps[1].ID)
	assert.True(t, sleeps[0].WakeUpHumor.Data().Calm)

	t.Run("正常系: 睡眠ごとの夢ID", func(t *testing.T) {
		ids, err := repo.FindDreamIDsBySleepIDs(ctx, db, []uint{earlier.ID, later.ID})
		require.NoError(t, err)
		assert.Len(t, ids[later.ID], 2)
		assert.Empty(t, ids[earlier.ID])
	})

	t.Run("正常系: 空のID一覧", func(t *testing.T) {
		ids, err := repo.FindDreamIDsBySleepIDs(ctx, db, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("正常系: 該当なしは空", func(t *testing.T) {
		sleeps, err := repo.FindByUserAndPeriod(ctx, db, user.ID, 5, 2024)
		require.NoError(t, err)
		assert.Empty(t, sleeps)
	})
}
