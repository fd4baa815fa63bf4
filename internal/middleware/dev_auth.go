package middleware

import (
	"net/http"

	"go_dream_keep/internal/model"
	"go_dream_keep/internal/webutil"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーの数値をそのままユーザーIDとしてコンテキストに設定する (トークン検証なし)
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		header := r.Header.Get("X-User-ID")
		if header == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-IDヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		userID, err := parseUserID(header)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-User-ID", "value", header, "error", err)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-IDの形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] User ID set to context (no validation)", "user_id", userID)
		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}
