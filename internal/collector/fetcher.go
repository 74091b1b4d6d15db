package collector

import (
	"time"

	"CandleScope/internal/model"
)

// Fetcher defines the interface for fetching historical market data.
type Fetcher interface {
	FetchDailyCandles(symbol string, from, to time.Time) ([]model.Candle, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	BasePrice float64
	Data      []model.Candle
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCandles(_ string, from, to time.Time) ([]model.Candle, error) {
	if m.Data != nil {
		return m.Data, nil
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return generateMockCandles(m.BasePrice, from, days), nil
}

func generateMockCandles(basePrice float64, from time.Time, count int) []model.Candle {
	if basePrice == 0 {
		basePrice = 100
	}
	candles := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		candles[i] = model.Candle{
			Time:   from.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return candles
}
