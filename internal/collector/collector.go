package collector

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"CandleScope/internal/model"
)

// Collector orchestrates data fetching and raw CSV snapshots.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	DataDir string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol, dataDir string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, DataDir: dataDir}
}

// Collect fetches daily candles for the window and saves them as a raw CSV
// snapshot named SYMBOL_YYYYMMDD.csv in the data directory. It returns the
// candles and the snapshot path.
func (c *Collector) Collect(from, to time.Time) ([]model.Candle, string, error) {
	candles, err := c.Fetcher.FetchDailyCandles(c.Symbol, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("fetch daily candles: %w", err)
	}
	if len(candles) == 0 {
		return nil, "", fmt.Errorf("no candles returned for %s", c.Symbol)
	}
	log.Printf("[INFO] fetched %d candles for %s (%s .. %s)",
		len(candles), c.Symbol, from.Format("2006-01-02"), to.Format("2006-01-02"))

	path, err := c.saveSnapshot(candles, to)
	if err != nil {
		return nil, "", err
	}
	return candles, path, nil
}

func (c *Collector) saveSnapshot(candles []model.Candle, asOf time.Time) (string, error) {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(c.DataDir, fmt.Sprintf("%s_%s.csv", c.Symbol, asOf.Format("20060102")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("date,open,high,low,close,volume\n"); err != nil {
		return "", fmt.Errorf("write snapshot header: %w", err)
	}
	for _, cd := range candles {
		line := cd.Time.Format("2006-01-02") + "," +
			strconv.FormatFloat(cd.Open, 'f', -1, 64) + "," +
			strconv.FormatFloat(cd.High, 'f', -1, 64) + "," +
			strconv.FormatFloat(cd.Low, 'f', -1, 64) + "," +
			strconv.FormatFloat(cd.Close, 'f', -1, 64) + "," +
			strconv.FormatFloat(cd.Volume, 'f', -1, 64) + "\n"
		if _, err := f.WriteString(line); err != nil {
			return "", fmt.Errorf("write snapshot row: %w", err)
		}
	}
	log.Printf("[INFO] snapshot saved: %s", path)
	return path, nil
}
