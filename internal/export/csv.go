package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"CandleScope/internal/model"
)

// WriteCandles writes the classified series as CSV: the original OHLCV columns
// followed by one boolean column per pattern label. Skipped candles carry
// false in every pattern column.
func WriteCandles(w io.Writer, candles []model.Candle, cls *model.Classification) error {
	if cls.Len() != len(candles) {
		return fmt.Errorf("classification covers %d candles, series has %d", cls.Len(), len(candles))
	}

	cw := csv.NewWriter(w)

	header := []string{"date", "open", "high", "low", "close", "volume"}
	for _, label := range model.AllPatterns {
		header = append(header, "is_"+string(label))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, c := range candles {
		row := []string{
			c.Time.Format("2006-01-02"),
			formatPrice(c.Open),
			formatPrice(c.High),
			formatPrice(c.Low),
			formatPrice(c.Close),
			formatPrice(c.Volume),
		}
		for _, label := range model.AllPatterns {
			row = append(row, strconv.FormatBool(cls.Labels[i].Has(label)))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the classified series to a CSV file.
func WriteFile(path string, candles []model.Candle, cls *model.Classification) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCandles(f, candles, cls); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// OutputPath derives the patterns-file name from an input path:
// data/NIFTY_20240105.csv becomes data/NIFTY_20240105_with_patterns.csv.
func OutputPath(inputPath string) string {
	base := strings.TrimSuffix(inputPath, ".csv")
	return base + "_with_patterns.csv"
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
