package recorder

import (
	"time"

	"CandleScope/internal/model"
)

// RunSnapshot holds all data for one analysis run.
type RunSnapshot struct {
	Input      string
	Source     string
	Candles    int
	Skipped    int
	Counts     map[model.PatternLabel]int
	Thresholds model.Thresholds
}

// PatternEvent records one pattern occurrence on one candle.
type PatternEvent struct {
	Label model.PatternLabel
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Recorder persists analysis history.
type Recorder interface {
	RecordRun(run *RunSnapshot, events []PatternEvent) error
	Close() error
}
