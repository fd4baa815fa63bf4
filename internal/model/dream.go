// internal/model/dream.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// Dream は記録された夢
type Dream struct {
	ID               uint                        `gorm:"primaryKey" json:"id"`
	Title            string                      `gorm:"uniqueIndex;not null" json:"title"`
	Description      string                      `gorm:"not null" json:"description"`
	Climate          datatypes.JSONType[Climate] `gorm:"not null" json:"climate"`
	EroticDream      bool                        `gorm:"not null;default:false" json:"erotic_dream"`
	HiddenDream      bool                        `gorm:"not null;default:false" json:"hidden_dream"`
	PersonalAnalysis *string                     `json:"personal_analysis,omitempty"`
	PointOfViewID    uint                        `gorm:"not null" json:"point_of_view_id"`
	HourID           uint                        `gorm:"not null" json:"hour_id"`
	DurationID       uint                        `gorm:"not null" json:"duration_id"`
	LucidityLevelID  uint                        `gorm:"not null" json:"lucidity_level_id"`
	TypeID           uint                        `gorm:"not null" json:"type_id"`
	RealityLevelID   uint                        `gorm:"not null" json:"reality_level_id"`
	DreamOriginID    uint                        `gorm:"not null" json:"dream_origin_id"`
	SleepID          uint                        `gorm:"not null;index" json:"sleep_id"`
	IsComplete       bool                        `gorm:"not null;default:true" json:"is_complete"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`

	// FindTagsByDreamIDs で設定する (GORMのリレーションではない)
	Tags []Tag `gorm:"-" json:"tags"`
}

func (Dream) TableName() string {
	return "dreams"
}

// LookupID はディメンションに対応する外部キーを返します
func (d *Dream) LookupID(dim LookupDimension) uint {
	switch dim {
	case DimensionPointOfView:
		return d.PointOfViewID
	case DimensionHour:
		return d.HourID
	case DimensionDuration:
		return d.DurationID
	case DimensionLucidityLevel:
		return d.LucidityLevelID
	case DimensionType:
		return d.TypeID
	case DimensionRealityLevel:
		return d.RealityLevelID
	case DimensionOrigin:
		return d.DreamOriginID
	}
	return 0
}
