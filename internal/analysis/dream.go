package analysis

import (
	"fmt"
	"unicode/utf8"

	"go_dream_keep/internal/model"

	"github.com/montanaflynn/stats"
)

// DreamStats は夢の集合から導出した統計。カテゴリは参照テーブルのIDのまま保持する
type DreamStats struct {
	ModeIDs             map[model.LookupDimension]uint
	MostClimate         *string
	EroticDreamsAverage float64
	TagPerDreamAverage  float64
	LongestDreamTitle   string
}

// ComputeDreamStats は dreams の並び順を出現順として統計を計算します
func ComputeDreamStats(dreams []*model.Dream) (*DreamStats, error) {
	if len(dreams) == 0 {
		return nil, model.ErrInsufficientData
	}

	result := &DreamStats{ModeIDs: make(map[model.LookupDimension]uint, len(model.LookupDimensions))}
	for _, dim := range model.LookupDimensions {
		ids := make([]uint, len(dreams))
		for i, d := range dreams {
			ids[i] = d.LookupID(dim)
		}
		id, err := Mode(ids)
		if err != nil {
			return nil, fmt.Errorf("mode of %s: %w", dim, err)
		}
		result.ModeIDs[dim] = id
	}

	result.MostClimate = MostClimate(dreams)

	erotic := 0
	tagCounts := make([]float64, len(dreams))
	longest := -1
	for i, d := range dreams {
		if d.EroticDream {
			erotic++
		}
		tagCounts[i] = float64(len(d.Tags))
		if n := utf8.RuneCountInString(d.Title); n > longest {
			longest = n
			result.LongestDreamTitle = d.Title
		}
	}
	result.EroticDreamsAverage = percentage(erotic, len(dreams))

	avg, err := stats.Mean(tagCounts)
	if err != nil {
		return nil, fmt.Errorf("tag per dream average: %w", err)
	}
	result.TagPerDreamAverage = avg

	return result, nil
}

// MostClimate は最も多く立っている天候フラグ名を返します。
// どのフラグも立っていない (または夢が0件) 場合は nil
func MostClimate(dreams []*model.Dream) *string {
	sets := make([][]bool, len(dreams))
	for i, d := range dreams {
		sets[i] = d.Climate.Data().Flags()
	}
	counts := CountFlags(sets, len(model.ClimateNames))

	var most *string
	bestCount := 0
	for i, c := range counts {
		if c > bestCount {
			name := model.ClimateNames[i]
			most, bestCount = &name, c
		}
	}
	return most
}
