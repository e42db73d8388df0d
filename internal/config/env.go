package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TREEFIND_"

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

type envSetter func(cfg *Config, value string) error

func boolSetter(field func(*Config) *bool) envSetter {
	return func(cfg *Config, value string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		*field(cfg) = b
		return nil
	}
}

func intSetter(field func(*Config) *int) envSetter {
	return func(cfg *Config, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		*field(cfg) = n
		return nil
	}
}

func stringSetter(field func(*Config) *string) envSetter {
	return func(cfg *Config, value string) error {
		*field(cfg) = value
		return nil
	}
}

// envMapping maps environment variables to settings.
var envMapping = map[string]envSetter{
	"TREEFIND_HIGHLIGHT_ALL":           boolSetter(func(c *Config) *bool { return &c.Search.HighlightAll }),
	"TREEFIND_FIND_NEXT_AFTER_REPLACE": boolSetter(func(c *Config) *bool { return &c.Search.FindNextAfterReplace }),
	"TREEFIND_FIND_CLASS":              stringSetter(func(c *Config) *string { return &c.Search.FindClass }),
	"TREEFIND_CASE_SENSITIVE":          boolSetter(func(c *Config) *bool { return &c.Search.CaseSensitive }),
	"TREEFIND_PRESERVE_CASE":           boolSetter(func(c *Config) *bool { return &c.Search.PreserveCase }),
	"TREEFIND_LOG_LEVEL":               stringSetter(func(c *Config) *string { return &c.Logging.Level }),
	"TREEFIND_LOG_FILE":                stringSetter(func(c *Config) *string { return &c.Logging.File }),
	"TREEFIND_LOG_MAX_SIZE_MB":         intSetter(func(c *Config) *int { return &c.Logging.MaxSizeMB }),
	"TREEFIND_LOG_MAX_BACKUPS":         intSetter(func(c *Config) *int { return &c.Logging.MaxBackups }),
	"TREEFIND_LOG_MAX_AGE_DAYS":        intSetter(func(c *Config) *int { return &c.Logging.MaxAgeDays }),
	"TREEFIND_LOG_COMPRESS":            boolSetter(func(c *Config) *bool { return &c.Logging.Compress }),
}

// EnvVars returns the names of all recognized environment variables.
func EnvVars() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, name)
	}
	return names
}

// ApplyEnv overrides cfg with the environment variables lookup finds.
// Empty values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for name, set := range envMapping {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(cfg, value); err != nil {
			return &ParseError{
				Path:    "$" + name,
				Message: fmt.Sprintf("invalid value %q", value),
				Err:     err,
			}
		}
	}
	return nil
}
