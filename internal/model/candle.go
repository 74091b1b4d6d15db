package model

import "time"

// Candle represents a single OHLC bar.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Valid reports whether the candle satisfies the OHLC invariant:
// low <= open <= high and low <= close <= high.
func (c Candle) Valid() bool {
	return c.Low <= c.Open && c.Open <= c.High &&
		c.Low <= c.Close && c.Close <= c.High
}
