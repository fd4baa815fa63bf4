// internal/model/lookup.go
package model

// LookupDimension は夢のカテゴリ属性 (参照テーブル) を表します。値はテーブル名
type LookupDimension string

const (
	DimensionPointOfView   LookupDimension = "dream_point_of_views"
	DimensionHour          LookupDimension = "dream_hours"
	DimensionDuration      LookupDimension = "dream_durations"
	DimensionLucidityLevel LookupDimension = "dream_lucidity_levels"
	DimensionType          LookupDimension = "dream_types"
	DimensionRealityLevel  LookupDimension = "dream_reality_levels"
	DimensionOrigin        LookupDimension = "dream_origins"
)

// LookupDimensions は分析で集計する全ディメンション
var LookupDimensions = []LookupDimension{
	DimensionPointOfView,
	DimensionHour,
	DimensionDuration,
	DimensionLucidityLevel,
	DimensionType,
	DimensionRealityLevel,
	DimensionOrigin,
}

func (d LookupDimension) TableName() string {
	return string(d)
}

// Lookup は参照テーブルの1行 (id → 説明文)。一度だけシードされ、以降は読み取り専用
type Lookup struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"not null" json:"description"`
}
