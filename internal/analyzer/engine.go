package analyzer

import (
	"fmt"

	"CandleScope/internal/calculator"
	"CandleScope/internal/model"
)

// InvalidPolicy controls what happens when a candle violates the OHLC invariant.
type InvalidPolicy int

const (
	// FailOnInvalid refuses to classify the whole series if any candle is invalid.
	FailOnInvalid InvalidPolicy = iota
	// SkipInvalid classifies valid candles and marks invalid ones as skipped.
	// A pattern window touching a skipped candle is not evaluated.
	SkipInvalid
)

// InvariantError reports the first candle whose prices are inconsistent.
type InvariantError struct {
	Index  int
	Candle model.Candle
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("candle %d violates OHLC invariant: open=%.2f high=%.2f low=%.2f close=%.2f",
		e.Index, e.Candle.Open, e.Candle.High, e.Candle.Low, e.Candle.Close)
}

// Options configures a classification run.
type Options struct {
	Thresholds model.Thresholds
	OnInvalid  InvalidPolicy
}

// Classify labels every candle in the series with the patterns it completes.
// Multi-candle patterns are anchored at their last candle: an engulfing label
// lands on the engulfing candle, a star label on the third candle. The series
// is never mutated; the result is a parallel structure. An empty series yields
// an empty classification and no error.
func Classify(candles []model.Candle, opts Options) (*model.Classification, error) {
	if opts.Thresholds == (model.Thresholds{}) {
		opts.Thresholds = model.DefaultThresholds()
	}
	t := opts.Thresholds

	cls := &model.Classification{
		Labels:  make([]model.LabelSet, len(candles)),
		Skipped: make([]bool, len(candles)),
	}
	if len(candles) == 0 {
		return cls, nil
	}

	for i, c := range candles {
		if c.Valid() {
			continue
		}
		if opts.OnInvalid == FailOnInvalid {
			return nil, &InvariantError{Index: i, Candle: c}
		}
		cls.Skipped[i] = true
	}

	for i, c := range candles {
		labels := model.LabelSet{}
		cls.Labels[i] = labels
		if cls.Skipped[i] {
			continue
		}

		if calculator.IsBullish(c) {
			labels[model.Bullish] = true
		}
		if calculator.IsBearish(c) {
			labels[model.Bearish] = true
		}
		if calculator.IsDoji(c, t.DojiTolerancePct) {
			labels[model.Doji] = true
		}
		if calculator.IsHammer(c, t.SmallBodyPct, t.LongShadowPct) {
			labels[model.Hammer] = true
		}
		if calculator.IsShootingStar(c, t.SmallBodyPct, t.LongShadowPct) {
			labels[model.ShootingStar] = true
		}

		if i >= 1 && !cls.Skipped[i-1] {
			prev := candles[i-1]
			if calculator.IsBullishEngulfing(prev, c) {
				labels[model.BullishEngulfing] = true
			}
			if calculator.IsBearishEngulfing(prev, c) {
				labels[model.BearishEngulfing] = true
			}
		}

		if i >= 2 && !cls.Skipped[i-1] && !cls.Skipped[i-2] {
			a, b := candles[i-2], candles[i-1]
			if calculator.IsMorningStar(a, b, c, t.DojiTolerancePct) {
				labels[model.MorningStar] = true
			}
			if calculator.IsEveningStar(a, b, c, t.DojiTolerancePct) {
				labels[model.EveningStar] = true
			}
		}
	}

	return cls, nil
}
