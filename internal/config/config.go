package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Symbol  string `yaml:"symbol"`
	} `yaml:"data_source"`
	Data struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`
	Analysis struct {
		DojiTolerancePct float64 `yaml:"doji_tolerance_pct"`
		SmallBodyPct     float64 `yaml:"small_body_pct"`
		LongShadowPct    float64 `yaml:"long_shadow_pct"`
		OnInvalid        string  `yaml:"on_invalid"` // "fail" or "skip"
		LookbackDays     int     `yaml:"lookback_days"`
	} `yaml:"analysis"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_SOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_SOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("ON_INVALID"); v != "" {
		cfg.Analysis.OnInvalid = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "NIFTY50"
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.Analysis.DojiTolerancePct == 0 {
		cfg.Analysis.DojiTolerancePct = 0.1
	}
	if cfg.Analysis.SmallBodyPct == 0 {
		cfg.Analysis.SmallBodyPct = 30.0
	}
	if cfg.Analysis.LongShadowPct == 0 {
		cfg.Analysis.LongShadowPct = 60.0
	}
	if cfg.Analysis.OnInvalid == "" {
		cfg.Analysis.OnInvalid = "fail"
	}
	if cfg.Analysis.LookbackDays == 0 {
		cfg.Analysis.LookbackDays = 120
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 30 18 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/candlescope.db"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Analysis.DojiTolerancePct < 0 {
		return fmt.Errorf("analysis.doji_tolerance_pct must be non-negative")
	}
	if c.Analysis.SmallBodyPct <= 0 || c.Analysis.SmallBodyPct > 100 {
		return fmt.Errorf("analysis.small_body_pct must be in (0, 100]")
	}
	if c.Analysis.LongShadowPct <= 0 || c.Analysis.LongShadowPct > 100 {
		return fmt.Errorf("analysis.long_shadow_pct must be in (0, 100]")
	}
	if c.Analysis.OnInvalid != "fail" && c.Analysis.OnInvalid != "skip" {
		return fmt.Errorf("analysis.on_invalid must be %q or %q", "fail", "skip")
	}
	if c.Analysis.LookbackDays <= 0 {
		return fmt.Errorf("analysis.lookback_days must be positive")
	}
	return nil
}
