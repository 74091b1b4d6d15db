package analyzer

import (
	"time"

	"CandleScope/internal/model"
)

// Summarize returns the number of candles carrying each label.
// Every label appears in the map, with zero for absent patterns.
func Summarize(cls *model.Classification) map[model.PatternLabel]int {
	counts := make(map[model.PatternLabel]int, len(model.AllPatterns))
	for _, label := range model.AllPatterns {
		counts[label] = 0
	}
	for _, labels := range cls.Labels {
		for label := range labels {
			counts[label]++
		}
	}
	return counts
}

// DatesFor returns the times at which the given label appears, in series order.
// The candles slice must be the series the classification was built from.
func DatesFor(cls *model.Classification, candles []model.Candle, label model.PatternLabel) []time.Time {
	var dates []time.Time
	for i, labels := range cls.Labels {
		if i >= len(candles) {
			break
		}
		if labels.Has(label) {
			dates = append(dates, candles[i].Time)
		}
	}
	return dates
}
