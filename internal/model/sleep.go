// internal/model/sleep.go
package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sleep は1回分の睡眠サイクル
type Sleep struct {
	ID                   uint                                      `gorm:"primaryKey" json:"id"`
	UserID               uint                                      `gorm:"not null;uniqueIndex:uq_sleep_user_date" json:"user_id"`
	Date                 time.Time                                 `gorm:"type:date;not null;uniqueIndex:uq_sleep_user_date" json:"date"` // 日単位 (UTC 0時)
	SleepTime            float64                                   `gorm:"not null" json:"sleep_time"`                                   // 時間単位。BeforeSave で算出
	SleepStart           time.Time                                 `gorm:"not null" json:"sleep_start"`
	SleepEnd             time.Time                                 `gorm:"not null" json:"sleep_end"`
	WakeUpHumor          datatypes.JSONType[Humor]                 `gorm:"not null" json:"wake_up_humor"`
	LayDownHumor         datatypes.JSONType[Humor]                 `gorm:"not null" json:"lay_down_humor"`
	BiologicalOccurences datatypes.JSONType[BiologicalOccurences] `gorm:"not null" json:"biological_occurences"`
	CreatedAt            time.Time                                 `json:"created_at"`
	UpdatedAt            time.Time                                 `json:"updated_at"`

	// 集計用。sleep_id で紐づく夢のID (FindDreamIDsBySleepIDs で設定)
	DreamIDs []uint `gorm:"-" json:"dream_ids,omitempty"`
}

func (Sleep) TableName() string {
	return "sleeps"
}

// BeforeSave は開始・終了時刻と気分フラグの整合性を検証し、SleepTime と Date を導出します
func (s *Sleep) BeforeSave(tx *gorm.DB) error {
	if s.SleepEnd.Before(s.SleepStart) {
		return fmt.Errorf("%w: sleep_start must not be after sleep_end", ErrInvalidInput)
	}
	if err := s.WakeUpHumor.Data().Validate(); err != nil {
		return fmt.Errorf("wake_up_humor: %w", err)
	}
	if err := s.LayDownHumor.Data().Validate(); err != nil {
		return fmt.Errorf("lay_down_humor: %w", err)
	}

	s.SleepTime = s.SleepEnd.Sub(s.SleepStart).Hours()
	if s.Date.IsZero() {
		s.Date = s.SleepStart
	}
	s.Date = DateOf(s.Date)
	return nil
}

// DateOf は t を UTC の日付 (0時) に切り詰めます
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthRange は year/month の [月初, 翌月初) を返します
func MonthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
