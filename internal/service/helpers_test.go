package service

import (
	"context"
	"testing"
	"time"

	"go_dream_keep/internal/config"
	"go_dream_keep/internal/model"
	"go_dream_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 分析対象月より後の固定の「現在時刻」
var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

// setupTestDB は、テストごとに独立したインメモリSQLiteを作成します。
// migrate が true の場合はテーブル作成と参照テーブルのシードまで行う
func setupTestDB(t *testing.T, migrate, strictUpsert bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if migrate {
		require.NoError(t, repository.Migrate(db, strictUpsert))
		require.NoError(t, repository.SeedLookups(context.Background(), db))
	}
	return db
}

type testServices struct {
	db    *gorm.DB
	dream *dreamAnalysisService
	sleep *sleepAnalysisService
}

// newTestServices は本物のリポジトリとSQLiteで分析サービスを組み立てます
func newTestServices(t *testing.T, cfg config.AnalysisConfig) *testServices {
	t.Helper()
	db := setupTestDB(t, true, cfg.StrictUpsert)
	userRepo := repository.NewGormUserRepository()

	dream := NewDreamAnalysisService(
		db,
		userRepo,
		repository.NewGormDreamRepository(),
		repository.NewGormLookupRepository(),
		repository.NewGormDreamAnalysisRepository(),
		cfg,
	).(*dreamAnalysisService)
	dream.now = func() time.Time { return fixedNow }

	sleep := NewSleepAnalysisService(
		db,
		userRepo,
		repository.NewGormSleepRepository(),
		repository.NewGormSleepAnalysisRepository(),
		cfg,
	).(*sleepAnalysisService)
	sleep.now = func() time.Time { return fixedNow }

	return &testServices{db: db, dream: dream, sleep: sleep}
}

func createUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

type sleepFixture struct {
	Day   int
	Hours float64
	Wake  model.Humor
	Lay   model.Humor
	Bio   model.BiologicalOccurences
}

// createSleep は 2024年3月 Day 日の睡眠を作成します (前日22時就寝)
func createSleep(t *testing.T, db *gorm.DB, userID uint, f sleepFixture) *model.Sleep {
	t.Helper()
	start := time.Date(2024, time.March, f.Day, 0, 0, 0, 0, time.UTC).Add(-2 * time.Hour)
	sleep := &model.Sleep{
		UserID:               userID,
		Date:                 time.Date(2024, time.March, f.Day, 0, 0, 0, 0, time.UTC),
		SleepStart:           start,
		SleepEnd:             start.Add(time.Duration(f.Hours * float64(time.Hour))),
		WakeUpHumor:          datatypes.NewJSONType(f.Wake),
		LayDownHumor:         datatypes.NewJSONType(f.Lay),
		BiologicalOccurences: datatypes.NewJSONType(f.Bio),
	}
	require.NoError(t, db.Create(sleep).Error)
	return sleep
}

type dreamFixture struct {
	Title         string
	Erotic        bool
	Tags          []string
	Climate       model.Climate
	PointOfViewID uint
}

func createDream(t *testing.T, db *gorm.DB, sleepID uint, f dreamFixture) *model.Dream {
	t.Helper()
	pov := f.PointOfViewID
	if pov == 0 {
		pov = 1
	}
	dream := &model.Dream{
		Title:           f.Title,
		Description:     f.Title,
		Climate:         datatypes.NewJSONType(f.Climate),
		EroticDream:     f.Erotic,
		PointOfViewID:   pov,
		HourID:          2,
		DurationID:      3,
		LucidityLevelID: 1,
		TypeID:          2,
		RealityLevelID:  3,
		DreamOriginID:   1,
		SleepID:         sleepID,
		IsComplete:      true,
	}
	require.NoError(t, db.Create(dream).Error)

	for _, title := range f.Tags {
		tag := &model.Tag{}
		require.NoError(t, db.Where(model.Tag{Title: title}).FirstOrCreate(tag).Error)
		require.NoError(t, db.Create(&model.DreamTag{DreamID: dream.ID, TagID: tag.ID}).Error)
	}
	return dream
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(m).Count(&count).Error)
	return count
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Detail.Code)
}
