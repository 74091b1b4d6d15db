package report

import (
	"fmt"
	"strings"
	"time"

	"CandleScope/internal/analyzer"
	"CandleScope/internal/model"
	"CandleScope/internal/recorder"
)

// FormatRunReport formats one analysis run as a multi-line text block.
func FormatRunReport(input string, candles []model.Candle, cls *model.Classification) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Candlestick Pattern Analysis | %s\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Input: %s\n", input))
	b.WriteString(fmt.Sprintf("Candles analyzed: %d\n", len(candles)))

	skipped := 0
	for _, s := range cls.Skipped {
		if s {
			skipped++
		}
	}
	if skipped > 0 {
		b.WriteString(fmt.Sprintf("Candles skipped (invalid OHLC): %d\n", skipped))
	}

	counts := analyzer.Summarize(cls)
	b.WriteString("Patterns found:\n")
	found := false
	for _, label := range model.ShapePatterns {
		if counts[label] > 0 {
			b.WriteString(fmt.Sprintf("  - %s: %d\n", label, counts[label]))
			found = true
		}
	}
	if !found {
		b.WriteString("  (none)\n")
	}

	return b.String()
}

// FormatRecentEvents formats stored pattern occurrences, newest first.
func FormatRecentEvents(label model.PatternLabel, events []recorder.PatternEvent) string {
	if len(events) == 0 {
		return fmt.Sprintf("%s: no recorded occurrences", label)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Recent %s occurrences:\n", label))
	for _, evt := range events {
		b.WriteString(fmt.Sprintf("  %s  O=%.2f H=%.2f L=%.2f C=%.2f\n",
			evt.Time.Format("2006-01-02"), evt.Open, evt.High, evt.Low, evt.Close))
	}
	return b.String()
}

// FormatPatternDates formats the occurrence dates of one label, capped at limit.
func FormatPatternDates(label model.PatternLabel, dates []time.Time, limit int) string {
	if len(dates) == 0 {
		return fmt.Sprintf("%s: no occurrences", label)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s occurred on:\n", label))
	for i, d := range dates {
		if limit > 0 && i >= limit {
			b.WriteString(fmt.Sprintf("  ... and %d more\n", len(dates)-limit))
			break
		}
		b.WriteString(fmt.Sprintf("  - %s\n", d.Format("2006-01-02")))
	}
	return b.String()
}
