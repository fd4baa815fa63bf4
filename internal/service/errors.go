// internal/service/errors.go
package service

import (
	"fmt"

	"go_dream_keep/internal/model"
)

// サービス層が返す AppError のコード
const (
	CodeInvalidPeriod    = "INVALID_PERIOD"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeAnalysisNotFound = "ANALYSIS_NOT_FOUND"
	CodeInsufficientData = "INSUFFICIENT_DATA"
	CodeInternalServer   = "INTERNAL_SERVER_ERROR"
)

func newInvalidPeriodError(field, message string) *model.AppError {
	return model.NewAppError(CodeInvalidPeriod, message, field, model.ErrInvalidPeriod)
}

func newInsufficientDataError(message string) *model.AppError {
	return model.NewAppError(CodeInsufficientData, message, "", model.ErrInsufficientData)
}

// newInternalError は原因を保持したまま ErrInternalServer として扱えるエラーを返します
func newInternalError(cause error) *model.AppError {
	return model.NewAppError(
		CodeInternalServer,
		"サーバー内部でエラーが発生しました。",
		"",
		fmt.Errorf("%w: %w", model.ErrInternalServer, cause),
	)
}
