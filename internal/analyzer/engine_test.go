package analyzer

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"CandleScope/internal/model"
)

func day(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}

func TestClassify_EmptySeries(t *testing.T) {
	cls, err := Classify(nil, Options{})
	if err != nil {
		t.Fatalf("empty series should not error: %v", err)
	}
	if cls.Len() != 0 {
		t.Errorf("expected empty classification, got %d entries", cls.Len())
	}
}

func TestClassify_SingleCandleLabels(t *testing.T) {
	candles := []model.Candle{
		{Time: day(1), Open: 100, High: 102, Low: 90, Close: 101}, // bullish hammer
	}
	cls, err := Classify(candles, Options{})
	if err != nil {
		t.Fatal(err)
	}
	labels := cls.Labels[0]
	if !labels.Has(model.Bullish) {
		t.Error("expected bullish label")
	}
	if !labels.Has(model.Hammer) {
		t.Error("expected hammer label")
	}
	if labels.Has(model.ShootingStar) {
		t.Error("hammer candle must not be a shooting star")
	}
}

func TestClassify_BoundaryAbsence(t *testing.T) {
	// Whatever the shapes, indexes 0 and 1 can never complete the longer
	// patterns: there are no candles before the series.
	candles := []model.Candle{
		{Time: day(1), Open: 110, High: 112, Low: 100, Close: 101},
		{Time: day(2), Open: 100, High: 115, Low: 99, Close: 112},
		{Time: day(3), Open: 112, High: 116, Low: 111, Close: 115},
	}
	cls, err := Classify(candles, Options{})
	if err != nil {
		t.Fatal(err)
	}

	multi := []model.PatternLabel{
		model.BullishEngulfing, model.BearishEngulfing,
		model.MorningStar, model.EveningStar,
	}
	for _, label := range multi {
		if cls.Labels[0].Has(label) {
			t.Errorf("index 0 must not carry %s", label)
		}
	}
	if cls.Labels[1].Has(model.MorningStar) || cls.Labels[1].Has(model.EveningStar) {
		t.Error("index 1 must not carry a three-candle pattern")
	}
}

func TestClassify_EngulfingAnchoredAtLastCandle(t *testing.T) {
	candles := []model.Candle{
		{Time: day(1), Open: 110, High: 112, Low: 100, Close: 101}, // bearish
		{Time: day(2), Open: 100, High: 115, Low: 99, Close: 112},  // engulfs
	}
	cls, err := Classify(candles, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if cls.Labels[0].Has(model.BullishEngulfing) {
		t.Error("engulfed candle must not carry the engulfing label")
	}
	if !cls.Labels[1].Has(model.BullishEngulfing) {
		t.Error("engulfing candle should carry the label")
	}
}

func TestClassify_MorningStar(t *testing.T) {
	candles := []model.Candle{
		{Time: day(1), Open: 110, High: 111, Low: 99, Close: 100},              // bearish
		{Time: day(2), Open: 98.000, High: 103, Low: 95, Close: 98.001},        // doji, gap down
		{Time: day(3), Open: 105, High: 116, Low: 104, Close: 115},             // bullish, gap up
		{Time: day(4), Open: 115.5, High: 117, Low: 115, Close: 116},           // trailing candle
	}
	cls, err := Classify(candles, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !cls.Labels[1].Has(model.Doji) {
		t.Error("middle candle should classify as doji")
	}
	if !cls.Labels[2].Has(model.MorningStar) {
		t.Error("expected morning star on the third candle")
	}
	for i := range candles {
		if i != 2 && cls.Labels[i].Has(model.MorningStar) {
			t.Errorf("morning star leaked to index %d", i)
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	candles := []model.Candle{
		{Time: day(1), Open: 110, High: 112, Low: 100, Close: 101},
		{Time: day(2), Open: 100, High: 115, Low: 99, Close: 112},
		{Time: day(3), Open: 100, High: 102, Low: 90, Close: 101},
		{Time: day(4), Open: 100, High: 150, Low: 50, Close: 100.05},
	}
	first, err := Classify(candles, Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Classify(candles, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("classification is not deterministic")
	}
}

func TestClassify_FailClosedOnInvalidCandle(t *testing.T) {
	candles := []model.Candle{
		{Time: day(1), Open: 100, High: 102, Low: 99, Close: 101},
		{Time: day(2), Open: 102, High: 100, Low: 105, Close: 103}, // low > high
		{Time: day(3), Open: 100, High: 102, Low: 99, Close: 101},
	}
	cls, err := Classify(candles, Options{OnInvalid: FailOnInvalid})
	if err == nil {
		t.Fatal("expected classification to be refused")
	}
	if cls != nil {
		t.Error("no partial output on refusal")
	}

	var invErr *InvariantError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvariantError, got %T", err)
	}
	if invErr.Index != 1 {
		t.Errorf("offending index = %d, want 1", invErr.Index)
	}
}

func TestClassify_SkipInvalidPolicy(t *testing.T) {
	candles := []model.Candle{
		{Time: day(1), Open: 110, High: 112, Low: 100, Close: 101}, // bearish
		{Time: day(2), Open: 102, High: 100, Low: 105, Close: 103}, // invalid
		{Time: day(3), Open: 100, High: 115, Low: 99, Close: 112},  // bullish
	}
	cls, err := Classify(candles, Options{OnInvalid: SkipInvalid})
	if err != nil {
		t.Fatalf("skip policy should not refuse: %v", err)
	}

	if !cls.Skipped[1] {
		t.Error("invalid candle should be marked skipped")
	}
	if len(cls.Labels[1]) != 0 {
		t.Error("skipped candle must carry no labels")
	}
	// The valid neighbours still get their single-candle labels.
	if !cls.Labels[0].Has(model.Bearish) {
		t.Error("candle 0 should still classify")
	}
	if !cls.Labels[2].Has(model.Bullish) {
		t.Error("candle 2 should still classify")
	}
	// A pair window touching the skipped candle is not evaluated.
	if cls.Labels[2].Has(model.BullishEngulfing) {
		t.Error("pair pattern must not span a skipped candle")
	}
}

func TestClassify_DefaultThresholdsWhenUnset(t *testing.T) {
	candles := []model.Candle{
		{Time: day(1), Open: 100, High: 150, Low: 50, Close: 100.05},
	}
	cls, err := Classify(candles, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !cls.Labels[0].Has(model.Doji) {
		t.Error("zero-value options should fall back to default thresholds")
	}
}
