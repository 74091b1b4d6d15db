package calculator

import "CandleScope/internal/model"

// IsBullish reports whether the candle closed above its open.
func IsBullish(c model.Candle) bool { return c.Close > c.Open }

// IsBearish reports whether the candle closed below its open.
// A candle with close == open is neither bullish nor bearish.
func IsBearish(c model.Candle) bool { return c.Close < c.Open }

// IsDoji reports whether the candle body is negligible relative to its range.
// A flat candle (range zero) counts as a doji.
func IsDoji(c model.Candle, tolerancePct float64) bool {
	if TotalRange(c) == 0 {
		return true
	}
	return BodyPct(c) <= tolerancePct
}

// IsHammer reports whether the candle has a small body and a long lower shadow.
func IsHammer(c model.Candle, smallBodyPct, longShadowPct float64) bool {
	_, lowerPct := ShadowPcts(c)
	return BodyPct(c) <= smallBodyPct && lowerPct >= longShadowPct
}

// IsShootingStar reports whether the candle has a small body and a long upper
// shadow. Since body, upper and lower shadow percentages sum to 100, a candle
// can never be both hammer and shooting star with a shadow threshold above 50.
func IsShootingStar(c model.Candle, smallBodyPct, longShadowPct float64) bool {
	upperPct, _ := ShadowPcts(c)
	return BodyPct(c) <= smallBodyPct && upperPct >= longShadowPct
}
