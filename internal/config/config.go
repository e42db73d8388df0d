package config

import (
	"regexp"

	"github.com/dshills/treefind/internal/logging"
	"github.com/dshills/treefind/internal/search"
)

// Config is the complete treefind configuration.
type Config struct {
	Search  search.Config `toml:"search"`
	Logging LoggingConfig `toml:"logging"`
}

// LoggingConfig configures the logger and its optional log file.
type LoggingConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Default returns the built-in configuration.
func Default() Config {
	file := logging.DefaultFileConfig("")
	return Config{
		Search: search.DefaultConfig(),
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  file.MaxSize,
			MaxBackups: file.MaxBackups,
			MaxAgeDays: file.MaxAge,
			Compress:   file.Compress,
		},
	}
}

// LogLevel returns the parsed log level.
func (c LoggingConfig) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Level)
	return level
}

// FileConfig returns the rotation settings for the log file.
func (c LoggingConfig) FileConfig() logging.FileConfig {
	return logging.FileConfig{
		Path:       c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

var classPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Validate checks every setting.
func (c Config) Validate() error {
	if !classPattern.MatchString(c.Search.FindClass) {
		return &ValidationError{
			Key:     "search.find_class",
			Value:   c.Search.FindClass,
			Message: "must be a letter followed by letters, digits, '-' or '_'",
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ValidationError{Key: "logging.level", Value: c.Logging.Level, Message: err.Error()}
	}
	for key, v := range map[string]int{
		"logging.max_size_mb":  c.Logging.MaxSizeMB,
		"logging.max_backups":  c.Logging.MaxBackups,
		"logging.max_age_days": c.Logging.MaxAgeDays,
	} {
		if v < 0 {
			return &ValidationError{Key: key, Value: v, Message: "must not be negative"}
		}
	}
	return nil
}
