package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go_dream_keep/internal/config"
	"go_dream_keep/internal/model"
	"go_dream_keep/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedMarchSleeps は 2024年3月1日〜5日の睡眠 (6,7,5,8,6 時間) と夢 (1,3,0,3,0 件) を作成します
func seedMarchSleeps(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()
	fixtures := []struct {
		sleep  sleepFixture
		dreams int
	}{
		{sleepFixture{Day: 1, Hours: 6, Wake: model.Humor{Calm: true}, Lay: model.Humor{Tiredness: true}, Bio: model.BiologicalOccurences{Snoring: true}}, 1},
		{sleepFixture{Day: 2, Hours: 7, Wake: model.Humor{Calm: true, Fear: true}, Lay: model.Humor{Tiredness: true}, Bio: model.BiologicalOccurences{Snoring: true, Apnea: true}}, 3},
		{sleepFixture{Day: 3, Hours: 5, Wake: model.Humor{Anxiety: true}, Lay: model.Humor{Calm: true}}, 0},
		{sleepFixture{Day: 4, Hours: 8, Wake: model.Humor{Undefined: true}, Lay: model.Humor{Other: true}, Bio: model.BiologicalOccurences{Snoring: true}}, 3},
		{sleepFixture{Day: 5, Hours: 6, Wake: model.Humor{Happiness: true}, Lay: model.Humor{Tiredness: true}}, 0},
	}
	for _, f := range fixtures {
		sleep := createSleep(t, db, userID, f.sleep)
		for i := 0; i < f.dreams; i++ {
			createDream(t, db, sleep.ID, dreamFixture{Title: fmt.Sprintf("user%d-day%d-dream%d", userID, f.sleep.Day, i)})
		}
	}
}

func TestSleepAnalysisService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svcs := newTestServices(t, config.AnalysisConfig{})
	user := createUser(t, svcs.db, "sleeper")
	seedMarchSleeps(t, svcs.db, user.ID)

	created, err := svcs.sleep.CreateSleepAnalysis(ctx, user.ID, 3, 2024)
	require.NoError(t, err)

	assert.Equal(t, 7, created.DreamsCount)
	assert.InDelta(t, 60.0, created.GoodWakeUpHumorPercentage, 1e-9)
	assert.InDelta(t, 40.0, created.BadWakeUpHumorPercentage, 1e-9)
	assert.InDelta(t, 20.0, created.GoodLayDownHumorPercentage, 1e-9)
	assert.InDelta(t, 60.0, created.BadLayDownHumorPercentage, 1e-9)
	assert.Equal(t, "calm", created.MostFrequentWakeUpHumor)
	assert.Equal(t, "drowsiness", created.LeastFrequentWakeUpHumor)
	assert.Equal(t, "tiredness", created.MostFrequentLayDownHumor)
	assert.Equal(t, "happiness", created.LeastFrequentLayDownHumor)
	assert.Equal(t, "snoring", created.MostFrequentBiologicalOccurence)
	assert.Equal(t, "sweating", created.LeastFrequentBiologicalOccurence)
	assert.InDelta(t, 8.0, created.MostSleepDuration, 1e-9)
	assert.InDelta(t, 5.0, created.LeastSleepDuration, 1e-9)
	assert.InDelta(t, 1.4, created.AverageDreamPerSleep, 1e-9)
	assert.InDelta(t, 6.4, created.SleepDurationAverage, 1e-9)

	march2 := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	assert.True(t, created.MostDreamsPerSleepDate.Equal(march2), "got %v", created.MostDreamsPerSleepDate)

	got, err := svcs.sleep.GetSleepAnalysis(ctx, user.ID, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 7, got.DreamsCount)
	assert.True(t, got.MostDreamsPerSleepDate.Equal(march2), "got %v", got.MostDreamsPerSleepDate)
}

func TestSleepAnalysisService_LegacyDurationFold(t *testing.T) {
	ctx := context.Background()
	svcs := newTestServices(t, config.AnalysisConfig{LegacyDurationFold: true})
	user := createUser(t, svcs.db, "sleeper")
	seedMarchSleeps(t, svcs.db, user.ID)

	created, err := svcs.sleep.CreateSleepAnalysis(ctx, user.ID, 3, 2024)
	require.NoError(t, err)

	// 6,7,5,8,6 の畳み込みでは最後に最大値を更新しなかった 6 が残る
	assert.InDelta(t, 8.0, created.MostSleepDuration, 1e-9)
	assert.InDelta(t, 6.0, created.LeastSleepDuration, 1e-9)
}

func TestSleepAnalysisService_CreateTwiceKeepsOneRow(t *testing.T) {
	for _, strict := range []bool{false, true} {
		t.Run(fmt.Sprintf("正常系: strict_upsert=%t", strict), func(t *testing.T) {
			ctx := context.Background()
			svcs := newTestServices(t, config.AnalysisConfig{StrictUpsert: strict})
			user := createUser(t, svcs.db, "sleeper")
			seedMarchSleeps(t, svcs.db, user.ID)

			first, err := svcs.sleep.CreateSleepAnalysis(ctx, user.ID, 3, 2024)
			require.NoError(t, err)

			createSleep(t, svcs.db, user.ID, sleepFixture{Day: 6, Hours: 4})

			second, err := svcs.sleep.CreateSleepAnalysis(ctx, user.ID, 3, 2024)
			require.NoError(t, err)

			assert.EqualValues(t, 1, countRows(t, svcs.db, &model.SleepAnalysis{}))
			assert.Equal(t, first.ID, second.ID)
			assert.InDelta(t, 4.0, second.LeastSleepDuration, 1e-9)
		})
	}
}

func TestSleepAnalysisService_Errors(t *testing.T) {
	ctx := context.Background()
	svcs := newTestServices(t, config.AnalysisConfig{})
	user := createUser(t, svcs.db, "sleeper")
	seedMarchSleeps(t, svcs.db, user.ID)

	t.Run("異常系: 存在しないユーザー", func(t *testing.T) {
		_, err := svcs.sleep.CreateSleepAnalysis(ctx, 9999, 3, 2024)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assertAppErrorCode(t, err, CodeUserNotFound)
	})

	t.Run("異常系: 未来の月", func(t *testing.T) {
		_, err := svcs.sleep.CreateSleepAnalysis(ctx, user.ID, 12, 2024)
		assert.ErrorIs(t, err, model.ErrInvalidPeriod)
	})

	t.Run("異常系: 睡眠のない月", func(t *testing.T) {
		_, err := svcs.sleep.CreateSleepAnalysis(ctx, user.ID, 4, 2024)
		assert.ErrorIs(t, err, model.ErrInsufficientData)
		assertAppErrorCode(t, err, CodeInsufficientData)
	})

	t.Run("異常系: 未作成の分析の取得", func(t *testing.T) {
		_, err := svcs.sleep.GetSleepAnalysis(ctx, user.ID, 3, 2024)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assertAppErrorCode(t, err, CodeAnalysisNotFound)
	})

	t.Run("異常系: 未来の月の取得", func(t *testing.T) {
		_, err := svcs.sleep.GetSleepAnalysis(ctx, user.ID, 1, 2025)
		assert.ErrorIs(t, err, model.ErrInvalidPeriod)
	})

	assert.EqualValues(t, 0, countRows(t, svcs.db, &model.SleepAnalysis{}))
}

func TestSleepAnalysisService_UpdateFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, false, false)
	userRepo := mocks.NewUserRepository(t)
	sleepRepo := mocks.NewSleepRepository(t)
	analysisRepo := mocks.NewSleepAnalysisRepository(t)
	svc := NewSleepAnalysisService(db, userRepo, sleepRepo, analysisRepo, config.AnalysisConfig{}).(*sleepAnalysisService)
	svc.now = func() time.Time { return fixedNow }

	sleeps := []*model.Sleep{{ID: 10, SleepTime: 7, Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}}
	existing := &model.SleepAnalysis{ID: 5, UserID: 1, Month: 3, Year: 2024, CreatedAt: fixedNow.AddDate(0, -1, 0)}

	userRepo.On("FindByID", mock.Anything, mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
	sleepRepo.On("FindByUserAndPeriod", mock.Anything, mock.Anything, uint(1), 3, 2024).Return(sleeps, nil)
	sleepRepo.On("FindDreamIDsBySleepIDs", mock.Anything, mock.Anything, []uint{10}).Return(map[uint][]uint{10: {1, 2}}, nil)
	analysisRepo.On("FindLatest", mock.Anything, mock.Anything, uint(1), 3, 2024).Return(existing, nil)
	analysisRepo.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(a *model.SleepAnalysis) bool {
		// 既存行のIDと作成日時を引き継いでいること
		return a.ID == existing.ID && a.CreatedAt.Equal(existing.CreatedAt) && a.DreamsCount == 2
	})).Return(errors.New("deadlock detected"))

	got, err := svc.CreateSleepAnalysis(ctx, 1, 3, 2024)
	assert.ErrorIs(t, err, model.ErrInternalServer)
	assert.Nil(t, got)
	analysisRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
