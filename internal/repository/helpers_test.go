package repository

import (
	"context"
	"testing"
	"time"

	"go_dream_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリSQLiteを作成し、マイグレーションとシードを行います
func setupTestDB(t *testing.T, strictUpsert bool) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db, strictUpsert))
	require.NoError(t, SeedLookups(context.Background(), db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestSleep は date の 23:00 から hours 時間の睡眠を作成します
func createTestSleep(t *testing.T, db *gorm.DB, userID uint, date time.Time, hours float64) *model.Sleep {
	t.Helper()
	start := date.Add(-time.Hour)
	sleep := &model.Sleep{
		UserID:               userID,
		Date:                 date,
		SleepStart:           start,
		SleepEnd:             start.Add(time.Duration(hours * float64(time.Hour))),
		WakeUpHumor:          datatypes.NewJSONType(model.Humor{Calm: true}),
		LayDownHumor:         datatypes.NewJSONType(model.Humor{Tiredness: true}),
		BiologicalOccurences: datatypes.NewJSONType(model.BiologicalOccurences{}),
	}
	require.NoError(t, db.Create(sleep).Error)
	return sleep
}

func createTestDream(t *testing.T, db *gorm.DB, sleepID uint, title string) *model.Dream {
	t.Helper()
	dream := &model.Dream{
		Title:           title,
		Description:     "description of " + title,
		Climate:         datatypes.NewJSONType(model.Climate{Rain: true}),
		PointOfViewID:   1,
		HourID:          1,
		DurationID:      1,
		LucidityLevelID: 1,
		TypeID:          1,
		RealityLevelID:  1,
		DreamOriginID:   1,
		SleepID:         sleepID,
		IsComplete:      true,
	}
	require.NoError(t, db.Create(dream).Error)
	return dream
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
