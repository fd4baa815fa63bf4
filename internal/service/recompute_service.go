// internal/service/recompute_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/model"
	"go_dream_keep/internal/repository"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RecomputeSummary は一括再計算の結果件数
type RecomputeSummary struct {
	Month         int `json:"month"`
	Year          int `json:"year"`
	Users         int `json:"users"`
	DreamAnalyses int `json:"dream_analyses"`
	SleepAnalyses int `json:"sleep_analyses"`
	SkippedDreams int `json:"skipped_dreams"`
	SkippedSleeps int `json:"skipped_sleeps"`
}

// RecomputeService は全ユーザーの指定月の分析を作り直します
type RecomputeService interface {
	RecomputeMonth(ctx context.Context, month, year int) (*RecomputeSummary, error)
}

type recomputeService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	dreamService DreamAnalysisService
	sleepService SleepAnalysisService
	concurrency  int
}

func NewRecomputeService(db *gorm.DB, userRepo repository.UserRepository, dreamService DreamAnalysisService, sleepService SleepAnalysisService, concurrency int) RecomputeService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &recomputeService{
		db:           db,
		userRepo:     userRepo,
		dreamService: dreamService,
		sleepService: sleepService,
		concurrency:  concurrency,
	}
}

// RecomputeMonth はユーザーごとに夢・睡眠の分析を並行して作成します。
// データのないユーザーはスキップとして数え、それ以外のエラーで全体を中断する
func (s *recomputeService) RecomputeMonth(ctx context.Context, month, year int) (*RecomputeSummary, error) {
	logger := middleware.GetLogger(ctx)

	userIDs, err := s.userRepo.ListIDs(ctx, s.db)
	if err != nil {
		return nil, newInternalError(err)
	}

	summary := &RecomputeSummary{Month: month, Year: year, Users: len(userIDs)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			_, dreamErr := s.dreamService.CreateDreamAnalysis(gctx, userID, month, year)
			dreamSkipped, err := skippable(dreamErr)
			if err != nil {
				return fmt.Errorf("user %d dream analysis: %w", userID, err)
			}

			_, sleepErr := s.sleepService.CreateSleepAnalysis(gctx, userID, month, year)
			sleepSkipped, err := skippable(sleepErr)
			if err != nil {
				return fmt.Errorf("user %d sleep analysis: %w", userID, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if dreamSkipped {
				summary.SkippedDreams++
			} else {
				summary.DreamAnalyses++
			}
			if sleepSkipped {
				summary.SkippedSleeps++
			} else {
				summary.SleepAnalyses++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Recompute aborted", "error", err, "month", month, "year", year)
		return nil, err
	}

	logger.Info("Recompute finished",
		"month", month,
		"year", year,
		"users", summary.Users,
		"dream_analyses", summary.DreamAnalyses,
		"sleep_analyses", summary.SleepAnalyses,
	)
	return summary, nil
}

// skippable は ErrInsufficientData をスキップ扱いにします
func skippable(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, model.ErrInsufficientData) {
		return true, nil
	}
	return false, err
}
