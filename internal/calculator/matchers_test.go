package calculator

import (
	"testing"

	"CandleScope/internal/model"
)

func TestIsBullishEngulfing(t *testing.T) {
	prev := model.Candle{Open: 110, High: 112, Low: 100, Close: 101} // bearish
	curr := model.Candle{Open: 100, High: 115, Low: 99, Close: 112}  // bullish

	if !IsBullishEngulfing(prev, curr) {
		t.Error("expected bullish engulfing")
	}
	if IsBearishEngulfing(prev, curr) {
		t.Error("unexpected bearish engulfing")
	}

	// Current body does not reach below previous close: no engulfing.
	partial := model.Candle{Open: 102, High: 115, Low: 99, Close: 112}
	if IsBullishEngulfing(prev, partial) {
		t.Error("partial cover should not be engulfing")
	}

	// Previous candle bullish: no bullish engulfing regardless of size.
	bullPrev := model.Candle{Open: 101, High: 112, Low: 100, Close: 110}
	if IsBullishEngulfing(bullPrev, curr) {
		t.Error("bullish previous candle cannot start a bullish engulfing")
	}
}

func TestIsBearishEngulfing(t *testing.T) {
	prev := model.Candle{Open: 101, High: 112, Low: 100, Close: 110} // bullish
	curr := model.Candle{Open: 112, High: 115, Low: 98, Close: 100}  // bearish

	if !IsBearishEngulfing(prev, curr) {
		t.Error("expected bearish engulfing")
	}
	if IsBullishEngulfing(prev, curr) {
		t.Error("unexpected bullish engulfing")
	}
}

func TestIsMorningStar(t *testing.T) {
	// Middle-candle smallness reuses the doji tolerance; pass it explicitly
	// here so the gap logic is exercised with round prices.
	tol := 60.0
	a := model.Candle{Open: 110, High: 111, Low: 99, Close: 100} // bearish
	b := model.Candle{Open: 98, High: 99.5, Low: 97.5, Close: 99}
	c := model.Candle{Open: 105, High: 116, Low: 104, Close: 115} // bullish

	if !IsMorningStar(a, b, c, tol) {
		t.Error("expected morning star")
	}
	if IsEveningStar(a, b, c, tol) {
		t.Error("unexpected evening star")
	}

	// No gap down into the middle candle.
	noGap := model.Candle{Open: 101, High: 102, Low: 98, Close: 99}
	if IsMorningStar(a, noGap, c, tol) {
		t.Error("morning star requires a gap down into the middle candle")
	}

	// No gap up out of the middle candle.
	lowOpen := model.Candle{Open: 98, High: 116, Low: 97, Close: 115}
	if IsMorningStar(a, b, lowOpen, tol) {
		t.Error("morning star requires a gap up out of the middle candle")
	}
}

func TestIsEveningStar(t *testing.T) {
	tol := 60.0
	a := model.Candle{Open: 100, High: 111, Low: 99, Close: 110} // bullish
	b := model.Candle{Open: 112, High: 112.5, Low: 110.5, Close: 111}
	c := model.Candle{Open: 105, High: 106, Low: 94, Close: 95} // bearish

	if !IsEveningStar(a, b, c, tol) {
		t.Error("expected evening star")
	}
	if IsMorningStar(a, b, c, tol) {
		t.Error("unexpected morning star")
	}
}
