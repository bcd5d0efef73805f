// Package config holds the explicit run configuration. There is no
// ambient global state; cmd builds one Config per invocation and
// passes it down.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hwfetch/hwfetch/collector"
	"github.com/hwfetch/hwfetch/export"
	"github.com/hwfetch/hwfetch/model"
)

// Config is the fully resolved configuration for one run.
type Config struct {
	Verbosity    model.Verbosity
	DryRun       bool
	ExportFormat string // empty means no export
	ExportDir    string
	Interactive  bool
	Timeout      time.Duration
	LogLevel     string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Verbosity: model.VerbosityBasic,
		ExportDir: ".",
		Timeout:   collector.DefaultTimeout,
		LogLevel:  "warn",
	}
}

// FromViper fills the file/flag-backed settings from a bound viper
// instance on top of the defaults.
func FromViper(v *viper.Viper) Config {
	cfg := Default()
	cfg.ExportFormat = v.GetString("export_format")
	if dir := v.GetString("export_directory"); dir != "" {
		cfg.ExportDir = dir
	}
	if timeout := v.GetDuration("timeout"); timeout > 0 {
		cfg.Timeout = timeout
	}
	if level := v.GetString("log_level"); level != "" {
		cfg.LogLevel = level
	}
	return cfg
}

// Validate rejects invalid values and impossible mode combinations.
func (c Config) Validate() error {
	if c.Verbosity < model.VerbosityBasic || c.Verbosity > model.VerbosityDeep {
		return fmt.Errorf("verbosity out of range: %d", c.Verbosity)
	}
	if c.ExportFormat != "" && !export.ValidFormat(c.ExportFormat) {
		return fmt.Errorf("unknown export format %q (want json, csv, or txt)", c.ExportFormat)
	}
	if c.Interactive && c.DryRun {
		return fmt.Errorf("--interactive cannot be combined with dry-run mode")
	}
	if c.Interactive && c.ExportFormat != "" {
		return fmt.Errorf("--interactive cannot be combined with --export-format")
	}
	return nil
}

// SlogLevel maps the configured log level to slog.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
