// internal/service/analysis_gate.go
package service

import (
	"context"
	"errors"
	"time"

	"go_dream_keep/internal/model"
	"go_dream_keep/internal/repository"

	"gorm.io/gorm"
)

// validateAnalysisRequest は分析の作成・取得の前提条件を確認します。
// 月・年の範囲、ユーザーの存在、未来の期間でないことを順に検証する
func validateAnalysisRequest(ctx context.Context, db *gorm.DB, userRepo repository.UserRepository, userID uint, month, year int, now time.Time) error {
	if month < 1 || month > 12 {
		return newInvalidPeriodError("month", "月は1から12の範囲で指定してください。")
	}
	if year < 1 {
		return newInvalidPeriodError("year", "年が正しくありません。")
	}

	if _, err := userRepo.FindByID(ctx, db, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError(CodeUserNotFound, "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		return newInternalError(err)
	}

	if isFuturePeriod(month, year, now) {
		return newInvalidPeriodError("", "未来の期間は指定できません。")
	}
	return nil
}

// isFuturePeriod は (year, month) が now の暦月より後かを年→月の順で比較します
func isFuturePeriod(month, year int, now time.Time) bool {
	if year != now.Year() {
		return year > now.Year()
	}
	return month > int(now.Month())
}

// analysisStore は夢・睡眠の分析リポジトリに共通する操作
type analysisStore[T any] interface {
	FindLatest(ctx context.Context, db *gorm.DB, userID uint, month, year int) (*T, error)
	Create(ctx context.Context, tx *gorm.DB, analysis *T) error
	Update(ctx context.Context, tx *gorm.DB, analysis *T) error
	Upsert(ctx context.Context, tx *gorm.DB, analysis *T) error
}

type analysisRecord[T any] interface {
	*T
	AdoptIdentity(existing *T)
}

// saveAnalysis は同じユーザー・期間の分析を上書き、なければ作成します。
// strict の場合は一意制約つきの ON CONFLICT で1文で保存し、保存後の行を読み直す
func saveAnalysis[T any, P analysisRecord[T]](ctx context.Context, tx *gorm.DB, store analysisStore[T], record P, userID uint, month, year int, strict bool) (*T, error) {
	if strict {
		if err := store.Upsert(ctx, tx, record); err != nil {
			return nil, newInternalError(err)
		}
		saved, err := store.FindLatest(ctx, tx, userID, month, year)
		if err != nil {
			return nil, newInternalError(err)
		}
		return saved, nil
	}

	existing, err := store.FindLatest(ctx, tx, userID, month, year)
	switch {
	case errors.Is(err, model.ErrNotFound):
		if err := store.Create(ctx, tx, record); err != nil {
			return nil, newInternalError(err)
		}
	case err != nil:
		return nil, newInternalError(err)
	default:
		record.AdoptIdentity(existing)
		if err := store.Update(ctx, tx, record); err != nil {
			return nil, newInternalError(err)
		}
	}
	return record, nil
}
