package calculator

import (
	"math"

	"CandleScope/internal/model"
)

// BodySize returns the absolute size of the candle body, |close - open|.
func BodySize(c model.Candle) float64 {
	return math.Abs(c.Close - c.Open)
}

// ShadowSizes returns the upper and lower shadow lengths of the candle.
func ShadowSizes(c model.Candle) (upper, lower float64) {
	bodyHigh := math.Max(c.Open, c.Close)
	bodyLow := math.Min(c.Open, c.Close)
	return c.High - bodyHigh, bodyLow - c.Low
}

// TotalRange returns the full high-low range of the candle.
func TotalRange(c model.Candle) float64 {
	return c.High - c.Low
}

// BodyPct returns the body size as a percentage of the total range.
// A flat candle (range zero) has a body percentage of 0.
func BodyPct(c model.Candle) float64 {
	r := TotalRange(c)
	if r == 0 {
		return 0
	}
	return BodySize(c) / r * 100
}

// ShadowPcts returns the upper and lower shadows as percentages of the
// total range. Both are 0 for a flat candle.
func ShadowPcts(c model.Candle) (upperPct, lowerPct float64) {
	r := TotalRange(c)
	if r == 0 {
		return 0, 0
	}
	upper, lower := ShadowSizes(c)
	return upper / r * 100, lower / r * 100
}
