// internal/model/analysis.go
package model

import "time"

// DreamAnalysis はユーザーの月次の夢の統計 (user/month/year ごとに最新1件)
type DreamAnalysis struct {
	ID                         uint      `gorm:"primaryKey" json:"id"`
	Month                      int       `gorm:"not null;index:idx_dream_analysis_period" json:"month"`
	Year                       int       `gorm:"not null;index:idx_dream_analysis_period" json:"year"`
	MostPointOfViewOccurence   string    `json:"most_point_of_view_occurence"`
	MostHourOccurence          string    `json:"most_hour_occurence"`
	MostDurationOccurence      string    `json:"most_duration_occurence"`
	MostLucidityLevelOccurence string    `json:"most_lucidity_level_occurence"`
	MostDreamTypeOccurence     string    `json:"most_dream_type_occurence"`
	MostRealityLevelOccurence  string    `json:"most_reality_level_occurence"`
	MostDreamOriginOccurence   string    `json:"most_dream_origin_occurence"`
	MostClimateOccurence       *string   `json:"most_climate_occurence"`
	EroticDreamsAverage        float64   `json:"erotic_dreams_average"`
	TagPerDreamAverage         float64   `json:"tag_per_dream_average"`
	LongestDreamTitle          string    `json:"longest_dream_title"`
	UserID                     uint      `gorm:"not null;index:idx_dream_analysis_period" json:"user_id"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

func (DreamAnalysis) TableName() string {
	return "dream_analyses"
}

// SleepAnalysis はユーザーの月次の睡眠の統計
type SleepAnalysis struct {
	ID                               uint      `gorm:"primaryKey" json:"id"`
	Month                            int       `gorm:"not null;index:idx_sleep_analysis_period" json:"month"`
	Year                             int       `gorm:"not null;index:idx_sleep_analysis_period" json:"year"`
	DreamsCount                      int       `json:"dreams_count"`
	GoodWakeUpHumorPercentage        float64   `json:"good_wake_up_humor_percentage"`
	BadWakeUpHumorPercentage         float64   `json:"bad_wake_up_humor_percentage"`
	GoodLayDownHumorPercentage       float64   `json:"good_lay_down_humor_percentage"`
	BadLayDownHumorPercentage        float64   `json:"bad_lay_down_humor_percentage"`
	MostFrequentWakeUpHumor          string    `json:"most_frequent_wake_up_humor"`
	LeastFrequentWakeUpHumor         string    `json:"least_frequent_wake_up_humor"`
	MostFrequentLayDownHumor         string    `json:"most_frequent_lay_down_humor"`
	LeastFrequentLayDownHumor        string    `json:"least_frequent_lay_down_humor"`
	MostFrequentBiologicalOccurence  string    `json:"most_frequent_biological_occurence"`
	LeastFrequentBiologicalOccurence string    `json:"least_frequent_biological_occurence"`
	MostSleepDuration                float64   `json:"most_sleep_duration"`
	LeastSleepDuration               float64   `json:"least_sleep_duration"`
	AverageDreamPerSleep             float64   `json:"average_dream_per_sleep"`
	SleepDurationAverage             float64   `json:"sleep_duration_average"`
	MostDreamsPerSleepDate           time.Time `gorm:"type:date" json:"most_dreams_per_sleep_date"`
	UserID                           uint      `gorm:"not null;index:idx_sleep_analysis_period" json:"user_id"`
	CreatedAt                        time.Time `json:"created_at"`
	UpdatedAt                        time.Time `json:"updated_at"`
}

func (SleepAnalysis) TableName() string {
	return "sleep_analyses"
}

// AnalysisPeriodRequest は分析の作成リクエストDTO
type AnalysisPeriodRequest struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=1970"`
}

// SetMostOccurence はディメンションに対応する最頻値の説明文を設定します
func (a *DreamAnalysis) SetMostOccurence(dim LookupDimension, description string) {
	switch dim {
	case DimensionPointOfView:
		a.MostPointOfViewOccurence = description
	case DimensionHour:
		a.MostHourOccurence = description
	case DimensionDuration:
		a.MostDurationOccurence = description
	case DimensionLucidityLevel:
		a.MostLucidityLevelOccurence = description
	case DimensionType:
		a.MostDreamTypeOccurence = description
	case DimensionRealityLevel:
		a.MostRealityLevelOccurence = description
	case DimensionOrigin:
		a.MostDreamOriginOccurence = description
	}
}

// AdoptIdentity は既存行の ID と作成日時を引き継ぎます (上書き保存用)
func (a *DreamAnalysis) AdoptIdentity(existing *DreamAnalysis) {
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
}

func (a *SleepAnalysis) AdoptIdentity(existing *SleepAnalysis) {
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
}
