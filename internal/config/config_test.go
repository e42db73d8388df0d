package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/treefind/internal/logging"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if !cfg.Search.HighlightAll || !cfg.Search.CaseSensitive || cfg.Search.FindClass != "find" {
		t.Errorf("unexpected search defaults: %+v", cfg.Search)
	}
	if cfg.Logging.LogLevel() != logging.LevelInfo {
		t.Errorf("LogLevel() = %v, want INFO", cfg.Logging.LogLevel())
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
[search]
case_sensitive = false
preserve_case = true
find_class = "hl"

[logging]
level = "debug"
file = "/tmp/treefind.log"
`)
	cfg, err := Parse("test.toml", data, Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Search.CaseSensitive || !cfg.Search.PreserveCase || cfg.Search.FindClass != "hl" {
		t.Errorf("search = %+v", cfg.Search)
	}
	if !cfg.Search.HighlightAll {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Logging.LogLevel() != logging.LevelDebug || cfg.Logging.FileConfig().Path != "/tmp/treefind.log" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := Parse("bad.toml", []byte("[search\ncase_sensitive = true\n"), Default())
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected ParseError, got %v", err)
		}
		if pe.Path != "bad.toml" || pe.Line != 1 {
			t.Errorf("ParseError = %+v, want bad.toml line 1", pe)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse("x.toml", []byte("[search]\nfuzzy = true\n"), Default())
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected ParseError, got %v", err)
		}
		if pe.Line != 2 {
			t.Errorf("Line = %d, want 2", pe.Line)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := Parse("x.toml", []byte("[search]\nhighlight_all = \"yes\"\n"), Default())
		if err == nil {
			t.Error("expected error for string bool")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"empty class", func(c *Config) { c.Search.FindClass = "" }, "search.find_class"},
		{"class with space", func(c *Config) { c.Search.FindClass = "a b" }, "search.find_class"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"negative size", func(c *Config) { c.Logging.MaxSizeMB = -1 }, "logging.max_size_mb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			var ve *ValidationError
			if err := cfg.Validate(); !errors.As(err, &ve) || ve.Key != tt.key {
				t.Errorf("Validate() = %v, want ValidationError for %s", err, tt.key)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TREEFIND_CASE_SENSITIVE":  "false",
		"TREEFIND_FIND_CLASS":      "match",
		"TREEFIND_LOG_LEVEL":       "warn",
		"TREEFIND_LOG_MAX_BACKUPS": "7",
		"UNRELATED":                "x",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := ApplyEnv(&cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Search.CaseSensitive || cfg.Search.FindClass != "match" {
		t.Errorf("search = %+v", cfg.Search)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.MaxBackups != 7 {
		t.Errorf("logging = %+v", cfg.Logging)
	}

	env["TREEFIND_HIGHLIGHT_ALL"] = "sometimes"
	var pe *ParseError
	if err := ApplyEnv(&cfg, lookup); !errors.As(err, &pe) || pe.Path != "$TREEFIND_HIGHLIGHT_ALL" {
		t.Errorf("ApplyEnv = %v, want ParseError for TREEFIND_HIGHLIGHT_ALL", err)
	}

	if len(EnvVars()) != len(envMapping) {
		t.Error("EnvVars should list every mapping")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should load defaults: %v", err)
	}
	if cfg.Search != Default().Search {
		t.Errorf("search = %+v, want defaults", cfg.Search)
	}

	path := filepath.Join(dir, "treefind.toml")
	if err := os.WriteFile(path, []byte("[search]\nfind_class = \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var ve *ValidationError
	if _, err := Load(path); !errors.As(err, &ve) {
		t.Errorf("Load = %v, want ValidationError", err)
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "treefind.toml")
	if err := os.WriteFile(path, []byte("[search]\ncase_sensitive = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	load := func(p string) (Config, error) {
		data, err := os.ReadFile(p)
		if err != nil {
			return Config{}, err
		}
		return Parse(p, data, Default())
	}
	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond), WithLoader(load))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[search]\ncase_sensitive = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A reload may observe the truncated file first; wait for the new value.
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case cfg := <-w.Updates():
			reloaded = !cfg.Search.CaseSensitive
		case err := <-w.Errors():
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}

	if err := os.WriteFile(path, []byte("[search\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-w.Errors():
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("error = %v, want ParseError", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
