package analysis

import "go_dream_keep/internal/model"

// Mode は最頻値を返します。同数の場合は先に出現したキーを優先します
func Mode[K comparable](keys []K) (K, error) {
	var best K
	if len(keys) == 0 {
		return best, model.ErrInsufficientData
	}

	counts := make(map[K]int, len(keys))
	bestCount := 0
	for _, k := range keys {
		counts[k]++
	}
	// 出現順に走査し、厳密に大きい場合のみ更新する
	for _, k := range keys {
		if c := counts[k]; c > bestCount {
			best, bestCount = k, c
		}
	}
	return best, nil
}

// CountFlags は各位置で true になっている件数を数えます
func CountFlags(sets [][]bool, width int) []int {
	counts := make([]int, width)
	for _, flags := range sets {
		for i := 0; i < width && i < len(flags); i++ {
			if flags[i] {
				counts[i]++
			}
		}
	}
	return counts
}

// MostFrequent は件数が最大の名前を返します (同数は列挙順で先のもの)
func MostFrequent(names []string, counts []int) string {
	best := 0
	for i := 1; i < len(names) && i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return names[best]
}

// LeastFrequent は件数が最小の名前を返します (同数は列挙順で先のもの)
func LeastFrequent(names []string, counts []int) string {
	least := 0
	for i := 1; i < len(names) && i < len(counts); i++ {
		if counts[i] < counts[least] {
			least = i
		}
	}
	return names[least]
}

// percentage は matched/total を百分率で返します
func percentage(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total) * 100
}
