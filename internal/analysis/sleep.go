package analysis

import (
	"fmt"
	"time"

	"go_dream_keep/internal/model"

	"github.com/montanaflynn/stats"
)

// SleepOptions は睡眠統計の計算方法の切り替え
type SleepOptions struct {
	// LegacyDurationFold が true の場合、最短睡眠時間を旧来の畳み込みで求める。
	// 最大値を更新しなかった値で最短値を上書きするため、真の最小値にならないことがある
	LegacyDurationFold bool
}

// SleepStats は睡眠サイクルの集合から導出した統計
type SleepStats struct {
	DreamsCount                      int
	GoodWakeUpHumorPercentage        float64
	BadWakeUpHumorPercentage         float64
	GoodLayDownHumorPercentage       float64
	BadLayDownHumorPercentage        float64
	MostFrequentWakeUpHumor          string
	LeastFrequentWakeUpHumor         string
	MostFrequentLayDownHumor         string
	LeastFrequentLayDownHumor        string
	MostFrequentBiologicalOccurence  string
	LeastFrequentBiologicalOccurence string
	MostSleepDuration                float64
	LeastSleepDuration               float64
	AverageDreamPerSleep             float64
	SleepDurationAverage             float64
	MostDreamsPerSleepDate           time.Time
}

// ComputeSleepStats は sleeps (DreamIDs 設定済み) から統計を計算します
func ComputeSleepStats(sleeps []*model.Sleep, opts SleepOptions) (*SleepStats, error) {
	if len(sleeps) == 0 {
		return nil, model.ErrInsufficientData
	}

	total := len(sleeps)
	result := &SleepStats{}

	var goodWake, badWake, goodLay, badLay int
	wakeSets := make([][]bool, total)
	laySets := make([][]bool, total)
	bioSets := make([][]bool, total)
	durations := make([]float64, total)
	dreamCounts := make([]float64, total)

	mostDreams := len(sleeps[0].DreamIDs)
	result.MostDreamsPerSleepDate = sleeps[0].Date

	for i, s := range sleeps {
		wake := s.WakeUpHumor.Data()
		lay := s.LayDownHumor.Data()
		if wake.IsGood() {
			goodWake++
		}
		if wake.IsBad() {
			badWake++
		}
		if lay.IsGood() {
			goodLay++
		}
		if lay.IsBad() {
			badLay++
		}
		wakeSets[i] = wake.Flags()
		laySets[i] = lay.Flags()
		bioSets[i] = s.BiologicalOccurences.Data().Flags()

		durations[i] = s.SleepTime
		dreamCounts[i] = float64(len(s.DreamIDs))
		result.DreamsCount += len(s.DreamIDs)

		if len(s.DreamIDs) > mostDreams {
			mostDreams = len(s.DreamIDs)
			result.MostDreamsPerSleepDate = s.Date
		}
	}

	result.GoodWakeUpHumorPercentage = percentage(goodWake, total)
	result.BadWakeUpHumorPercentage = percentage(badWake, total)
	result.GoodLayDownHumorPercentage = percentage(goodLay, total)
	result.BadLayDownHumorPercentage = percentage(badLay, total)

	wakeCounts := CountFlags(wakeSets, len(model.HumorNames))
	result.MostFrequentWakeUpHumor = MostFrequent(model.HumorNames, wakeCounts)
	result.LeastFrequentWakeUpHumor = LeastFrequent(model.HumorNames, wakeCounts)

	layCounts := CountFlags(laySets, len(model.HumorNames))
	result.MostFrequentLayDownHumor = MostFrequent(model.HumorNames, layCounts)
	result.LeastFrequentLayDownHumor = LeastFrequent(model.HumorNames, layCounts)

	bioCounts := CountFlags(bioSets, len(model.BiologicalOccurenceNames))
	result.MostFrequentBiologicalOccurence = MostFrequent(model.BiologicalOccurenceNames, bioCounts)
	result.LeastFrequentBiologicalOccurence = LeastFrequent(model.BiologicalOccurenceNames, bioCounts)

	most, least, err := DurationExtremes(durations, opts.LegacyDurationFold)
	if err != nil {
		return nil, err
	}
	result.MostSleepDuration = most
	result.LeastSleepDuration = least

	if result.AverageDreamPerSleep, err = stats.Mean(dreamCounts); err != nil {
		return nil, fmt.Errorf("average dream per sleep: %w", err)
	}
	if result.SleepDurationAverage, err = stats.Mean(durations); err != nil {
		return nil, fmt.Errorf("sleep duration average: %w", err)
	}

	return result, nil
}

// DurationExtremes は睡眠時間の最大・最小を返します
func DurationExtremes(durations []float64, legacy bool) (float64, float64, error) {
	if len(durations) == 0 {
		return 0, 0, model.ErrInsufficientData
	}

	if legacy {
		most, least := 0.0, durations[0]
		for _, d := range durations {
			if d > most {
				most = d
			} else {
				least = d
			}
		}
		return most, least, nil
	}

	most, err := stats.Max(durations)
	if err != nil {
		return 0, 0, fmt.Errorf("max sleep duration: %w", err)
	}
	least, err := stats.Min(durations)
	if err != nil {
		return 0, 0, fmt.Errorf("min sleep duration: %w", err)
	}
	return most, least, nil
}
