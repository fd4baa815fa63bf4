//go:generate mockery --name SleepAnalysisService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_dream_keep/internal/analysis"
	"go_dream_keep/internal/config"
	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/model"
	"go_dream_keep/internal/repository"

	"gorm.io/gorm"
)

type SleepAnalysisService interface {
	CreateSleepAnalysis(ctx context.Context, userID uint, month, year int) (*model.SleepAnalysis, error)
	GetSleepAnalysis(ctx context.Context, userID uint, month, year int) (*model.SleepAnalysis, error)
}

type sleepAnalysisService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	sleepRepo    repository.SleepRepository
	analysisRepo repository.SleepAnalysisRepository
	cfg          config.AnalysisConfig
	now          func() time.Time
}

func NewSleepAnalysisService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	sleepRepo repository.SleepRepository,
	analysisRepo repository.SleepAnalysisRepository,
	cfg config.AnalysisConfig,
) SleepAnalysisService {
	return &sleepAnalysisService{
		db:           db,
		userRepo:     userRepo,
		sleepRepo:    sleepRepo,
		analysisRepo: analysisRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (s *sleepAnalysisService) CreateSleepAnalysis(ctx context.Context, userID uint, month, year int) (*model.SleepAnalysis, error) {
	logger := middleware.GetLogger(ctx)
	var saved *model.SleepAnalysis

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateAnalysisRequest(ctx, tx, s.userRepo, userID, month, year, s.now()); err != nil {
			return err
		}

		sleeps, err := s.sleepRepo.FindByUserAndPeriod(ctx, tx, userID, month, year)
		if err != nil {
			return newInternalError(err)
		}
		if len(sleeps) == 0 {
			return newInsufficientDataError("指定した期間に睡眠の記録がありません。")
		}

		sleepIDs := make([]uint, len(sleeps))
		for i, sl := range sleeps {
			sleepIDs[i] = sl.ID
		}
		dreamIDs, err := s.sleepRepo.FindDreamIDsBySleepIDs(ctx, tx, sleepIDs)
		if err != nil {
			return newInternalError(err)
		}
		for _, sl := range sleeps {
			sl.DreamIDs = dreamIDs[sl.ID]
		}

		stats, err := analysis.ComputeSleepStats(sleeps, analysis.SleepOptions{LegacyDurationFold: s.cfg.LegacyDurationFold})
		if err != nil {
			if errors.Is(err, model.ErrInsufficientData) {
				return newInsufficientDataError("指定した期間に睡眠の記録がありません。")
			}
			return newInternalError(err)
		}

		record := &model.SleepAnalysis{
			UserID:                           userID,
			Month:                            month,
			Year:                             year,
			DreamsCount:                      stats.DreamsCount,
			GoodWakeUpHumorPercentage:        stats.GoodWakeUpHumorPercentage,
			BadWakeUpHumorPercentage:         stats.BadWakeUpHumorPercentage,
			GoodLayDownHumorPercentage:       stats.GoodLayDownHumorPercentage,
			BadLayDownHumorPercentage:        stats.BadLayDownHumorPercentage,
			MostFrequentWakeUpHumor:          stats.MostFrequentWakeUpHumor,
			LeastFrequentWakeUpHumor:         stats.LeastFrequentWakeUpHumor,
			MostFrequentLayDownHumor:         stats.MostFrequentLayDownHumor,
			LeastFrequentLayDownHumor:        stats.LeastFrequentLayDownHumor,
			MostFrequentBiologicalOccurence:  stats.MostFrequentBiologicalOccurence,
			LeastFrequentBiologicalOccurence: stats.LeastFrequentBiologicalOccurence,
			MostSleepDuration:                stats.MostSleepDuration,
			LeastSleepDuration:               stats.LeastSleepDuration,
			AverageDreamPerSleep:             stats.AverageDreamPerSleep,
			SleepDurationAverage:             stats.SleepDurationAverage,
			MostDreamsPerSleepDate:           stats.MostDreamsPerSleepDate,
		}

		saved, err = saveAnalysis[model.SleepAnalysis](ctx, tx, s.analysisRepo, record, userID, month, year, s.cfg.StrictUpsert)
		return err
	})
	if err != nil {
		logger.Warn("Failed to create sleep analysis",
			"error", err,
			"user_id", userID,
			"month", month,
			"year", year,
		)
		return nil, err
	}

	logger.Info("Sleep analysis saved", "analysis_id", saved.ID, "user_id", userID, "month", month, "year", year)
	return saved, nil
}

func (s *sleepAnalysisService) GetSleepAnalysis(ctx context.Context, userID uint, month, year int) (*model.SleepAnalysis, error) {
	if err := validateAnalysisRequest(ctx, s.db, s.userRepo, userID, month, year, s.now()); err != nil {
		return nil, err
	}

	found, err := s.analysisRepo.FindLatest(ctx, s.db, userID, month, year)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError(CodeAnalysisNotFound, "指定した期間の睡眠の分析はまだ作成されていません。", "", model.ErrNotFound)
		}
		return nil, newInternalError(err)
	}
	return found, nil
}
