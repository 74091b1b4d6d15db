package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"CandleScope/internal/analyzer"
	"CandleScope/internal/collector"
	"CandleScope/internal/export"
	"CandleScope/internal/ingest"
	"CandleScope/internal/model"
	"CandleScope/internal/recorder"
	"CandleScope/internal/report"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic fetch-and-analyze job.
type Scheduler struct {
	Cron         *cron.Cron
	Collector    *collector.Collector
	Recorder     recorder.Recorder
	Opts         analyzer.Options
	LookbackDays int
	Ctx          context.Context
}

// NewScheduler creates a new Scheduler. The collector may be nil when only
// AnalyzeFile is used.
func NewScheduler(ctx context.Context, col *collector.Collector, rec recorder.Recorder, opts analyzer.Options, lookbackDays int) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Collector:    col,
		Recorder:     rec,
		Opts:         opts,
		LookbackDays: lookbackDays,
		Ctx:          ctx,
	}
}

// RegisterDaily registers the daily fetch-and-analyze task.
func (s *Scheduler) RegisterDaily(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily analysis")
	to := time.Now()
	from := to.AddDate(0, 0, -s.LookbackDays)

	candles, path, err := s.Collector.Collect(from, to)
	if err != nil {
		log.Printf("[ERROR] daily collect: %v", err)
		return
	}
	if err := s.analyze(path, s.Collector.Fetcher.Name(), candles); err != nil {
		log.Printf("[ERROR] daily analysis: %v", err)
	}
}

// AnalyzeFile runs a one-shot analysis of a CSV file.
func (s *Scheduler) AnalyzeFile(path string) error {
	candles, err := ingest.ReadFile(path)
	if err != nil {
		var schemaErr *ingest.SchemaError
		if errors.As(err, &schemaErr) {
			return fmt.Errorf("input schema: %w", err)
		}
		return err
	}
	return s.analyze(path, "csv", candles)
}

func (s *Scheduler) analyze(input, source string, candles []model.Candle) error {
	cls, err := analyzer.Classify(candles, s.Opts)
	if err != nil {
		var invErr *analyzer.InvariantError
		if errors.As(err, &invErr) {
			// Fail-closed: the series is returned to the caller unlabeled.
			return fmt.Errorf("classification refused: %w", err)
		}
		return err
	}

	outPath := export.OutputPath(input)
	if err := export.WriteFile(outPath, candles, cls); err != nil {
		return fmt.Errorf("export patterns: %w", err)
	}
	log.Printf("[INFO] patterns written: %s", outPath)

	skipped := 0
	for _, sk := range cls.Skipped {
		if sk {
			skipped++
		}
	}
	counts := analyzer.Summarize(cls)
	if err := s.Recorder.RecordRun(&recorder.RunSnapshot{
		Input:      input,
		Source:     source,
		Candles:    len(candles),
		Skipped:    skipped,
		Counts:     counts,
		Thresholds: s.Opts.Thresholds,
	}, patternEvents(candles, cls)); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	log.Printf("[INFO] analysis complete\n%s", report.FormatRunReport(input, candles, cls))
	for _, label := range model.ShapePatterns {
		if counts[label] == 0 {
			continue
		}
		dates := analyzer.DatesFor(cls, candles, label)
		log.Printf("[INFO] %s", report.FormatPatternDates(label, dates, 5))
	}
	return nil
}

// patternEvents flattens the classification into per-occurrence records for
// the shape patterns. Direction labels are summarized only, not stored row
// by row.
func patternEvents(candles []model.Candle, cls *model.Classification) []recorder.PatternEvent {
	var events []recorder.PatternEvent
	for i, c := range candles {
		for _, label := range model.ShapePatterns {
			if cls.Labels[i].Has(label) {
				events = append(events, recorder.PatternEvent{
					Label: label,
					Time:  c.Time,
					Open:  c.Open,
					High:  c.High,
					Low:   c.Low,
					Close: c.Close,
				})
			}
		}
	}
	return events
}
