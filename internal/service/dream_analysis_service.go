//go:generate mockery --name DreamAnalysisService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_dream_keep/internal/analysis"
	"go_dream_keep/internal/config"
	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/model"
	"go_dream_keep/internal/repository"

	"gorm.io/gorm"
)

type DreamAnalysisService interface {
	CreateDreamAnalysis(ctx context.Context, userID uint, month, year int) (*model.DreamAnalysis, error)
	GetDreamAnalysis(ctx context.Context, userID uint, month, year int) (*model.DreamAnalysis, error)
}

type dreamAnalysisService struct {
	db           *gorm.DB // トランザクション用
	userRepo     repository.UserRepository
	dreamRepo    repository.DreamRepository
	lookupRepo   repository.LookupRepository
	analysisRepo repository.DreamAnalysisRepository
	cfg          config.AnalysisConfig
	now          func() time.Time
}

func NewDreamAnalysisService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	dreamRepo repository.DreamRepository,
	lookupRepo repository.LookupRepository,
	analysisRepo repository.DreamAnalysisRepository,
	cfg config.AnalysisConfig,
) DreamAnalysisService {
	return &dreamAnalysisService{
		db:           db,
		userRepo:     userRepo,
		dreamRepo:    dreamRepo,
		lookupRepo:   lookupRepo,
		analysisRepo: analysisRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

// CreateDreamAnalysis は指定月の夢を集計し、分析を作成または上書きします。
// 検証・集計・保存は1つのトランザクションで行い、失敗時は何も書き込まない
func (s *dreamAnalysisService) CreateDreamAnalysis(ctx context.Context, userID uint, month, year int) (*model.DreamAnalysis, error) {
	logger := middleware.GetLogger(ctx)
	var saved *model.DreamAnalysis

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateAnalysisRequest(ctx, tx, s.userRepo, userID, month, year, s.now()); err != nil {
			return err
		}

		dreams, err := s.dreamRepo.FindByUserAndPeriod(ctx, tx, userID, month, year)
		if err != nil {
			return newInternalError(err)
		}
		if len(dreams) == 0 {
			return newInsufficientDataError("指定した期間に夢の記録がありません。")
		}

		dreamIDs := make([]uint, len(dreams))
		for i, d := range dreams {
			dreamIDs[i] = d.ID
		}
		tags, err := s.dreamRepo.FindTagsByDreamIDs(ctx, tx, dreamIDs)
		if err != nil {
			return newInternalError(err)
		}
		for _, d := range dreams {
			d.Tags = tags[d.ID]
		}

		stats, err := analysis.ComputeDreamStats(dreams)
		if err != nil {
			if errors.Is(err, model.ErrInsufficientData) {
				return newInsufficientDataError("指定した期間に夢の記録がありません。")
			}
			return newInternalError(err)
		}

		record := &model.DreamAnalysis{
			UserID:               userID,
			Month:                month,
			Year:                 year,
			MostClimateOccurence: stats.MostClimate,
			EroticDreamsAverage:  stats.EroticDreamsAverage,
			TagPerDreamAverage:   stats.TagPerDreamAverage,
			LongestDreamTitle:    stats.LongestDreamTitle,
		}
		for _, dim := range model.LookupDimensions {
			description, err := s.resolveDescription(ctx, tx, dim, stats.ModeIDs[dim])
			if err != nil {
				return err
			}
			record.SetMostOccurence(dim, description)
		}

		saved, err = saveAnalysis[model.DreamAnalysis](ctx, tx, s.analysisRepo, record, userID, month, year, s.cfg.StrictUpsert)
		return err
	})
	if err != nil {
		logger.Warn("Failed to create dream analysis",
			"error", err,
			"user_id", userID,
			"month", month,
			"year", year,
		)
		return nil, err
	}

	logger.Info("Dream analysis saved", "analysis_id", saved.ID, "user_id", userID, "month", month, "year", year)
	return saved, nil
}

// resolveDescription は参照テーブルのIDを説明文に変換します
func (s *dreamAnalysisService) resolveDescription(ctx context.Context, tx *gorm.DB, dim model.LookupDimension, id uint) (string, error) {
	descriptions, err := s.lookupRepo.FindDescriptions(ctx, tx, dim)
	if err != nil {
		return "", newInternalError(err)
	}
	description, ok := descriptions[id]
	if !ok {
		return "", newInternalError(fmt.Errorf("no description for id %d in %s", id, dim))
	}
	return description, nil
}

func (s *dreamAnalysisService) GetDreamAnalysis(ctx context.Context, userID uint, month, year int) (*model.DreamAnalysis, error) {
	if err := validateAnalysisRequest(ctx, s.db, s.userRepo, userID, month, year, s.now()); err != nil {
		return nil, err
	}

	found, err := s.analysisRepo.FindLatest(ctx, s.db, userID, month, year)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError(CodeAnalysisNotFound, "指定した期間の夢の分析はまだ作成されていません。", "", model.ErrNotFound)
		}
		return nil, newInternalError(err)
	}
	return found, nil
}
