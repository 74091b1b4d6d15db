package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CandleScope/internal/analyzer"
	"CandleScope/internal/collector"
	"CandleScope/internal/config"
	"CandleScope/internal/model"
	"CandleScope/internal/recorder"
	"CandleScope/internal/report"
	"CandleScope/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CandleScope starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	opts := analyzer.Options{
		Thresholds: model.Thresholds{
			DojiTolerancePct: cfg.Analysis.DojiTolerancePct,
			SmallBodyPct:     cfg.Analysis.SmallBodyPct,
			LongShadowPct:    cfg.Analysis.LongShadowPct,
		},
	}
	if cfg.Analysis.OnInvalid == "skip" {
		opts.OnInvalid = analyzer.SkipInvalid
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Report mode: print stored occurrences of one pattern and exit.
	if v := os.Getenv("REPORT_PATTERN"); v != "" {
		sr, ok := rec.(*recorder.SQLiteRecorder)
		if !ok {
			log.Fatal("[FATAL] REPORT_PATTERN requires a configured sqlite database")
		}
		events, err := sr.RecentEvents(model.PatternLabel(v), 20)
		if err != nil {
			log.Fatalf("[FATAL] query events: %v", err)
		}
		fmt.Println(report.FormatRecentEvents(model.PatternLabel(v), events))
		return
	}

	// One-shot mode: analyze a CSV file and exit.
	if path := os.Getenv("ANALYZE_FILE"); path != "" {
		log.Printf("[INFO] one-shot analysis: %s", path)
		sched := scheduler.NewScheduler(ctx, nil, rec, opts, cfg.Analysis.LookbackDays)
		if err := sched.AnalyzeFile(path); err != nil {
			log.Fatalf("[FATAL] analyze %s: %v", path, err)
		}
		return
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = &collector.MockFetcher{}
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol, cfg.Data.Dir)

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, rec, opts, cfg.Analysis.LookbackDays)
	if err := sched.RegisterDaily(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily analysis now")
		go sched.RunDailyNow()
	}

	log.Println("[INFO] CandleScope is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CandleScope stopped")
}
