package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/MasatsuguKitadai/TrendChecker/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Portfolio struct {
		File string `yaml:"file"`
	} `yaml:"portfolio"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Strategy struct {
		Mode        string  `yaml:"mode"`     // "short" or "long"
		StopPct     float64 `yaml:"stop_pct"` // fraction, e.g. 0.05
		TrailPct    float64 `yaml:"trail_pct"`
		HistoryDays int     `yaml:"history_days"`
	} `yaml:"strategy"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; everything has a default
// except Telegram, which stays optional.
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
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("PORTFOLIO_FILE"); v != "" {
		cfg.Portfolio.File = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("STRATEGY_MODE"); v != "" {
		cfg.Strategy.Mode = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("STOP_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Strategy.StopPct = f
		}
	}
	if v := os.Getenv("TRAIL_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Strategy.TrailPct = f
		}
	}

	// Defaults
	if cfg.Portfolio.File == "" {
		cfg.Portfolio.File = "data/portfolio.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/trend_checker.db"
	}
	if cfg.Strategy.Mode == "" {
		cfg.Strategy.Mode = string(model.ModeShort)
	}
	if cfg.Strategy.StopPct == 0 {
		cfg.Strategy.StopPct = 0.05
	}
	if cfg.Strategy.TrailPct == 0 {
		cfg.Strategy.TrailPct = 0.10
	}
	if cfg.Strategy.HistoryDays == 0 {
		cfg.Strategy.HistoryDays = 504 // two trading years, enough for MA75
	}

	return cfg, nil
}

// Mode returns the configured trade mode as a typed value.
func (c *Config) Mode() model.TradeMode {
	return model.TradeMode(c.Strategy.Mode)
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if m := model.TradeMode(c.Strategy.Mode); m != model.ModeShort && m != model.ModeLong {
		return fmt.Errorf("strategy.mode must be %q or %q, got %q", model.ModeShort, model.ModeLong, c.Strategy.Mode)
	}
	if c.Strategy.StopPct <= 0 || c.Strategy.StopPct >= 1 {
		return fmt.Errorf("strategy.stop_pct must be in (0,1), got %v", c.Strategy.StopPct)
	}
	if c.Strategy.TrailPct <= 0 || c.Strategy.TrailPct >= 1 {
		return fmt.Errorf("strategy.trail_pct must be in (0,1), got %v", c.Strategy.TrailPct)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}
