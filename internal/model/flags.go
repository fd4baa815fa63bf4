// internal/model/flags.go
package model

import "fmt"

// ClimateNames は Climate のフラグ名 (列挙順 = 同数時の優先順)
var ClimateNames = []string{
	"mild", "hot", "drizzle", "rain", "storm",
	"fog", "snow", "multiple", "other", "undefined",
}

// Climate は夢の天候。フラグは排他ではない
type Climate struct {
	Mild      bool `json:"mild"`
	Hot       bool `json:"hot"`
	Drizzle   bool `json:"drizzle"`
	Rain      bool `json:"rain"`
	Storm     bool `json:"storm"`
	Fog       bool `json:"fog"`
	Snow      bool `json:"snow"`
	Multiple  bool `json:"multiple"`
	Other     bool `json:"other"`
	Undefined bool `json:"undefined"`
}

// Flags は ClimateNames と同じ並びでフラグを返します
func (c Climate) Flags() []bool {
	return []bool{
		c.Mild, c.Hot, c.Drizzle, c.Rain, c.Storm,
		c.Fog, c.Snow, c.Multiple, c.Other, c.Undefined,
	}
}

// HumorNames は気分フラグ名。undefined / other は集計対象外なので含めない
var HumorNames = []string{
	"calm", "happiness",
	"anxiety", "drowsiness", "fear", "sadness", "tiredness",
}

// 「良い」気分は HumorNames の先頭 goodHumorCount 個
const goodHumorCount = 2

// Humor は起床時・就寝時の気分
type Humor struct {
	Calm       bool `json:"calm"`
	Happiness  bool `json:"happiness"`
	Anxiety    bool `json:"anxiety"`
	Drowsiness bool `json:"drowsiness"`
	Fear       bool `json:"fear"`
	Sadness    bool `json:"sadness"`
	Tiredness  bool `json:"tiredness"`
	Undefined  bool `json:"undefined"`
	Other      bool `json:"other"`
}

// Flags は HumorNames と同じ並びで気分フラグを返します (undefined / other を除く)
func (h Humor) Flags() []bool {
	return []bool{
		h.Calm, h.Happiness,
		h.Anxiety, h.Drowsiness, h.Fear, h.Sadness, h.Tiredness,
	}
}

// IsGood は calm / happiness のいずれかが立っているか
func (h Humor) IsGood() bool {
	for _, f := range h.Flags()[:goodHumorCount] {
		if f {
			return true
		}
	}
	return false
}

// IsBad は anxiety / drowsiness / fear / sadness / tiredness のいずれかが立っているか
func (h Humor) IsBad() bool {
	for _, f := range h.Flags()[goodHumorCount:] {
		if f {
			return true
		}
	}
	return false
}

// Validate は undefined / other が他のフラグと同時に立っていないことを確認します
func (h Humor) Validate() error {
	hasMood := h.IsGood() || h.IsBad()
	switch {
	case h.Undefined && h.Other:
		return fmt.Errorf("%w: humor undefined and other are mutually exclusive", ErrInvalidInput)
	case h.Undefined && hasMood:
		return fmt.Errorf("%w: humor undefined cannot be combined with a mood", ErrInvalidInput)
	case h.Other && hasMood:
		return fmt.Errorf("%w: humor other cannot be combined with a mood", ErrInvalidInput)
	}
	return nil
}

// BiologicalOccurenceNames は睡眠中の生理的な出来事 (15種)
var BiologicalOccurenceNames = []string{
	"sweating", "bruxism", "apnea", "sleepParalysis", "sleepTalking",
	"sleepwalking", "bedwetting", "hypnicJerks", "hallucinations", "insomnia",
	"snoring", "nasalCongestion", "acidReflux", "headache", "cramps",
}

type BiologicalOccurences struct {
	Sweating        bool `json:"sweating"`
	Bruxism         bool `json:"bruxism"`
	Apnea           bool `json:"apnea"`
	SleepParalysis  bool `json:"sleepParalysis"`
	SleepTalking    bool `json:"sleepTalking"`
	Sleepwalking    bool `json:"sleepwalking"`
	Bedwetting      bool `json:"bedwetting"`
	HypnicJerks     bool `json:"hypnicJerks"`
	Hallucinations  bool `json:"hallucinations"`
	Insomnia        bool `json:"insomnia"`
	Snoring         bool `json:"snoring"`
	NasalCongestion bool `json:"nasalCongestion"`
	AcidReflux      bool `json:"acidReflux"`
	Headache        bool `json:"headache"`
	Cramps          bool `json:"cramps"`
}

func (b BiologicalOccurences) Flags() []bool {
	return []bool{
		b.Sweating, b.Bruxism, b.Apnea, b.SleepParalysis, b.SleepTalking,
		b.Sleepwalking, b.Bedwetting, b.HypnicJerks, b.Hallucinations, b.Insomnia,
		b.Snoring, b.NasalCongestion, b.AcidReflux, b.Headache, b.Cramps,
	}
}
