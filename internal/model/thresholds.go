package model

// Thresholds tunes the shape predicates. All values are percentages of the
// candle's high-low range.
type Thresholds struct {
	// DojiTolerancePct is the maximum body percentage for a doji.
	DojiTolerancePct float64
	// SmallBodyPct is the maximum body percentage for hammer and shooting star.
	SmallBodyPct float64
	// LongShadowPct is the minimum shadow percentage for hammer and shooting star.
	LongShadowPct float64
}

// DefaultThresholds returns the standard pattern thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DojiTolerancePct: 0.1,
		SmallBodyPct:     30.0,
		LongShadowPct:    60.0,
	}
}
