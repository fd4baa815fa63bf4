// internal/handlers/analysis_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"go_dream_keep/internal/middleware"
	"go_dream_keep/internal/model"
	"go_dream_keep/internal/service"
	"go_dream_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type AnalysisHandler struct {
	dreamService service.DreamAnalysisService
	sleepService service.SleepAnalysisService
}

func NewAnalysisHandler(dreamService service.DreamAnalysisService, sleepService service.SleepAnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		dreamService: dreamService,
		sleepService: sleepService,
	}
}

// RegisterRoutes は /analyses 配下のルートを登録します (認証済みのルーターに対して呼ぶ)
func (h *AnalysisHandler) RegisterRoutes(r chi.Router) {
	r.Route("/analyses", func(r chi.Router) {
		r.Post("/dreams", h.PostDreamAnalysis)
		r.Get("/dreams", h.GetDreamAnalysis)
		r.Post("/sleeps", h.PostSleepAnalysis)
		r.Get("/sleeps", h.GetSleepAnalysis)
	})
}

// PostDreamAnalysis は {"month":3,"year":2024} の期間で夢の分析を作成(上書き)します
func (h *AnalysisHandler) PostDreamAnalysis(w http.ResponseWriter, r *http.Request) {
	serveAnalysis(w, r, "PostDreamAnalysis", periodFromBody, h.dreamService.CreateDreamAnalysis, http.StatusCreated)
}

// GetDreamAnalysis は ?month=3&year=2024 の期間の夢の分析を返します
func (h *AnalysisHandler) GetDreamAnalysis(w http.ResponseWriter, r *http.Request) {
	serveAnalysis(w, r, "GetDreamAnalysis", periodFromQuery, h.dreamService.GetDreamAnalysis, http.StatusOK)
}

func (h *AnalysisHandler) PostSleepAnalysis(w http.ResponseWriter, r *http.Request) {
	serveAnalysis(w, r, "PostSleepAnalysis", periodFromBody, h.sleepService.CreateSleepAnalysis, http.StatusCreated)
}

func (h *AnalysisHandler) GetSleepAnalysis(w http.ResponseWriter, r *http.Request) {
	serveAnalysis(w, r, "GetSleepAnalysis", periodFromQuery, h.sleepService.GetSleepAnalysis, http.StatusOK)
}

// serveAnalysis は認証済みユーザーと期間を取り出してサービスを呼び、結果をJSONで返します
func serveAnalysis[T any](
	w http.ResponseWriter,
	r *http.Request,
	name string,
	readPeriod func(*http.Request) (*model.AnalysisPeriodRequest, error),
	call func(ctx context.Context, userID uint, month, year int) (*T, error),
	successStatus int,
) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", name))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Error("User ID missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	period, err := readPeriod(r)
	if err != nil {
		logger.Warn("Invalid analysis period", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("month", period.Month), slog.Int("year", period.Year))

	result, err := call(r.Context(), userID, period.Month, period.Year)
	if err != nil {
		logger.Warn("Analysis request failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, successStatus, result, logger)
}

func periodFromBody(r *http.Request) (*model.AnalysisPeriodRequest, error) {
	var req model.AnalysisPeriodRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func periodFromQuery(r *http.Request) (*model.AnalysisPeriodRequest, error) {
	month, err := webutil.QueryInt(r, "month")
	if err != nil {
		return nil, err
	}
	year, err := webutil.QueryInt(r, "year")
	if err != nil {
		return nil, err
	}
	req := &model.AnalysisPeriodRequest{Month: month, Year: year}
	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}
