package model

// PatternLabel identifies a candlestick pattern or direction label.
type PatternLabel string

const (
	Bullish          PatternLabel = "bullish"
	Bearish          PatternLabel = "bearish"
	Doji             PatternLabel = "doji"
	Hammer           PatternLabel = "hammer"
	ShootingStar     PatternLabel = "shooting_star"
	BullishEngulfing PatternLabel = "bullish_engulfing"
	BearishEngulfing PatternLabel = "bearish_engulfing"
	MorningStar      PatternLabel = "morning_star"
	EveningStar      PatternLabel = "evening_star"
)

// AllPatterns lists every label in canonical column order.
var AllPatterns = []PatternLabel{
	Bullish, Bearish, Doji, Hammer, ShootingStar,
	BullishEngulfing, BearishEngulfing, MorningStar, EveningStar,
}

// ShapePatterns lists the labels that describe an actual chart pattern,
// excluding the plain bullish/bearish direction labels.
var ShapePatterns = []PatternLabel{
	Doji, Hammer, ShootingStar,
	BullishEngulfing, BearishEngulfing, MorningStar, EveningStar,
}

// LabelSet is the set of labels attached to one candle.
type LabelSet map[PatternLabel]bool

// Has reports whether the set contains the given label.
func (s LabelSet) Has(label PatternLabel) bool { return s[label] }

// Classification holds one label set per candle, parallel to the input series.
// It is built once by the analyzer and read-only thereafter.
type Classification struct {
	Labels []LabelSet
	// Skipped marks candles that violated the OHLC invariant and were
	// excluded under the skip policy. With the fail policy it is all false.
	Skipped []bool
}

// Len returns the number of classified candles.
func (c *Classification) Len() int { return len(c.Labels) }
