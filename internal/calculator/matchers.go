package calculator

import "CandleScope/internal/model"

// IsBullishEngulfing reports whether curr's bullish body fully engulfs prev's
// bearish body.
func IsBullishEngulfing(prev, curr model.Candle) bool {
	return IsBearish(prev) && IsBullish(curr) &&
		curr.Open < prev.Close && curr.Close > prev.Open
}

// IsBearishEngulfing reports whether curr's bearish body fully engulfs prev's
// bullish body.
func IsBearishEngulfing(prev, curr model.Candle) bool {
	return IsBullish(prev) && IsBearish(curr) &&
		curr.Open > prev.Close && curr.Close < prev.Open
}

// IsMorningStar reports whether a, b, c form a morning star: a bearish candle,
// a doji-like candle gapping down from it, then a bullish candle gapping up.
// The doji tolerance doubles as the small-body test for the middle candle.
func IsMorningStar(a, b, c model.Candle, dojiTolerancePct float64) bool {
	return IsBearish(a) && IsDoji(b, dojiTolerancePct) && IsBullish(c) &&
		b.Open < a.Close && c.Open > b.Close
}

// IsEveningStar reports whether a, b, c form an evening star: a bullish candle,
// a doji-like candle gapping up from it, then a bearish candle gapping down.
func IsEveningStar(a, b, c model.Candle, dojiTolerancePct float64) bool {
	return IsBullish(a) && IsDoji(b, dojiTolerancePct) && IsBearish(c) &&
		b.Open > a.Close && c.Open < b.Close
}
