package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"CandleScope/internal/model"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id                      INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp               INTEGER NOT NULL,
			input                   TEXT,
			source                  TEXT,
			candle_count            INTEGER,
			skipped_count           INTEGER,
			doji_tolerance_pct      REAL,
			small_body_pct          REAL,
			long_shadow_pct         REAL,
			count_bullish           INTEGER,
			count_bearish           INTEGER,
			count_doji              INTEGER,
			count_hammer            INTEGER,
			count_shooting_star     INTEGER,
			count_bullish_engulfing INTEGER,
			count_bearish_engulfing INTEGER,
			count_morning_star      INTEGER,
			count_evening_star      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS pattern_events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      INTEGER NOT NULL,
			candle_time INTEGER NOT NULL,
			label       TEXT NOT NULL,
			open        REAL,
			high        REAL,
			low         REAL,
			close       REAL,
			FOREIGN KEY (run_id) REFERENCES analysis_runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_run ON pattern_events(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_label ON pattern_events(label)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts a run snapshot and its pattern events in one transaction.
func (r *SQLiteRecorder) RecordRun(run *RunSnapshot, events []PatternEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	res, err := tx.Exec(`INSERT INTO analysis_runs
		(timestamp, input, source, candle_count, skipped_count,
		 doji_tolerance_pct, small_body_pct, long_shadow_pct,
		 count_bullish, count_bearish, count_doji, count_hammer, count_shooting_star,
		 count_bullish_engulfing, count_bearish_engulfing, count_morning_star, count_evening_star)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), run.Input, run.Source, run.Candles, run.Skipped,
		run.Thresholds.DojiTolerancePct, run.Thresholds.SmallBodyPct, run.Thresholds.LongShadowPct,
		run.Counts[model.Bullish], run.Counts[model.Bearish],
		run.Counts[model.Doji], run.Counts[model.Hammer], run.Counts[model.ShootingStar],
		run.Counts[model.BullishEngulfing], run.Counts[model.BearishEngulfing],
		run.Counts[model.MorningStar], run.Counts[model.EveningStar],
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("run id: %w", err)
	}

	for _, evt := range events {
		if _, err := tx.Exec(`INSERT INTO pattern_events
			(run_id, candle_time, label, open, high, low, close)
			VALUES (?,?,?,?,?,?,?)`,
			runID, evt.Time.Unix(), string(evt.Label),
			evt.Open, evt.High, evt.Low, evt.Close,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert event: %w", err)
		}
	}

	return tx.Commit()
}

// RecentEvents returns the latest occurrences of a label across all runs,
// newest first, up to limit rows.
func (r *SQLiteRecorder) RecentEvents(label model.PatternLabel, limit int) ([]PatternEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT candle_time, label, open, high, low, close
		FROM pattern_events WHERE label = ? ORDER BY candle_time DESC LIMIT ?`,
		string(label), limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []PatternEvent
	for rows.Next() {
		var evt PatternEvent
		var ts int64
		var lbl string
		if err := rows.Scan(&ts, &lbl, &evt.Open, &evt.High, &evt.Low, &evt.Close); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		evt.Time = time.Unix(ts, 0).UTC()
		evt.Label = model.PatternLabel(lbl)
		events = append(events, evt)
	}
	return events, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
