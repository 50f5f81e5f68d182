// Package config loads reportcard settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/reportcard/internal/chart"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the decoded config file.
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// UIConfig holds the defaults the dashboard resets to on returning to the
// main screen.
type UIConfig struct {
	DefaultQuarter    int    `toml:"default_quarter"`
	DefaultChart      string `toml:"default_chart"`
	CollapsedSubjects int    `toml:"collapsed_subjects"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	Level      string `toml:"level"` // debug, info, warn, error
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			DefaultQuarter:    1,
			DefaultChart:      string(chart.Attendance),
			CollapsedSubjects: 4,
		},
		Log: LogConfig{
			Level:      "info",
			File:       DefaultLogPath(),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// DefaultPath resolves the config file path in priority order:
// 1. REPORTCARD_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/reportcard/config.toml
// 3. ~/.config/reportcard/config.toml
func DefaultPath() string {
	if p := os.Getenv("REPORTCARD_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "reportcard", "config.toml")
}

// DefaultLogPath is $XDG_STATE_HOME/reportcard/reportcard.log.
func DefaultLogPath() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state")), "reportcard", "reportcard.log")
}

func xdgDir(env, fallback string) string {
	if d := os.Getenv(env); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}

// Load reads the config at path, or at DefaultPath when path is empty.
// A missing file yields the defaults. Environment overrides are applied
// after the file, and the result is validated.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays REPORTCARD_* variables on cfg.
func (c *Config) applyEnv() error {
	if l := os.Getenv("REPORTCARD_LOG_LEVEL"); l != "" {
		c.Log.Level = l
	}
	if f := os.Getenv("REPORTCARD_LOG_FILE"); f != "" {
		c.Log.File = f
	}
	if q := os.Getenv("REPORTCARD_QUARTER"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return fmt.Errorf("%w: REPORTCARD_QUARTER=%q is not a number", ErrInvalidConfig, q)
		}
		c.UI.DefaultQuarter = n
	}
	if ch := os.Getenv("REPORTCARD_CHART"); ch != "" {
		c.UI.DefaultChart = ch
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.UI.DefaultQuarter < chart.FirstQuarter || c.UI.DefaultQuarter > chart.LastQuarter {
		return fmt.Errorf("%w: default_quarter %d outside %d..%d", ErrInvalidConfig, c.UI.DefaultQuarter, chart.FirstQuarter, chart.LastQuarter)
	}
	if _, err := chart.ParseMetric(c.UI.DefaultChart); err != nil {
		return fmt.Errorf("%w: default_chart: %v", ErrInvalidConfig, err)
	}
	if c.UI.CollapsedSubjects < 1 {
		return fmt.Errorf("%w: collapsed_subjects must be at least 1", ErrInvalidConfig)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// Chart returns the parsed default chart. Call after Validate.
func (c Config) Chart() chart.Metric {
	m, err := chart.ParseMetric(c.UI.DefaultChart)
	if err != nil {
		return chart.Attendance
	}
	return m
}
