// internal/model/tag.go
package model

import "time"

// Tag は夢に付ける自由入力のタグ (タイトルは重複可)
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// DreamTag は Dream と Tag の中間テーブル
type DreamTag struct {
	ID        uint      `gorm:"primaryKey"`
	DreamID   uint      `gorm:"not null;index"`
	TagID     uint      `gorm:"not null;index"`
	CreatedAt time.Time
}

func (DreamTag) TableName() string {
	return "dream_tags"
}
