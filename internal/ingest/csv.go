package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"CandleScope/internal/model"
)

// SchemaError reports required columns missing from a tabular input.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

var requiredColumns = []string{"date", "open", "high", "low", "close"}

// ReadCandles reads OHLC rows from CSV data. The header must contain the
// columns date, open, high, low, close (case-insensitive, any order); a
// volume column is picked up when present and extra columns are ignored.
// Rows are returned sorted by date ascending.
func ReadCandles(r io.Reader) ([]model.Candle, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	// Header normalization happens here only; nothing downstream sees
	// column names.
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	volIdx, hasVolume := index["volume"]

	var candles []model.Candle
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		var c model.Candle
		c.Time, err = parseDate(row[index["date"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if c.Open, err = parsePrice(row[index["open"]], "open"); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if c.High, err = parsePrice(row[index["high"]], "high"); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if c.Low, err = parsePrice(row[index["low"]], "low"); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if c.Close, err = parsePrice(row[index["close"]], "close"); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if hasVolume && volIdx < len(row) && row[volIdx] != "" {
			if c.Volume, err = strconv.ParseFloat(strings.TrimSpace(row[volIdx]), 64); err != nil {
				return nil, fmt.Errorf("row %d: parse volume: %w", line, err)
			}
		}
		candles = append(candles, c)
	}

	sort.SliceStable(candles, func(i, j int) bool {
		return candles[i].Time.Before(candles[j].Time)
	})
	return candles, nil
}

// ReadFile reads OHLC candles from a CSV file.
func ReadFile(path string) ([]model.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	candles, err := ReadCandles(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return candles, nil
}

func parsePrice(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, s, err)
	}
	return v, nil
}
