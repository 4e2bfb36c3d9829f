// Package config loads application settings from defaults, an optional YAML
// file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/members/internal/storage"
)

// Environment variables read by Load.
const (
	EnvDBPath              = "MEMBERS_DB_PATH"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFile             = "MEMBERS_LOG_FILE"
	EnvSearchMode          = "MEMBERS_SEARCH_MODE"
	EnvSearchCaseSensitive = "MEMBERS_SEARCH_CASE_SENSITIVE"
)

// Config holds the application settings.
type Config struct {
	DBPath   string `yaml:"db_path"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Search   Search `yaml:"search"`
}

// Search configures name matching.
type Search struct {
	Mode          string `yaml:"mode"`
	CaseSensitive bool   `yaml:"case_sensitive"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DBPath:   "members.db",
		LogLevel: "info",
		LogFile:  "members.log",
		Search: Search{
			Mode: string(storage.MatchContains),
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. Callers apply their own overrides and
// then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDBPath); ok && v != "" {
		c.DBPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := lookup(EnvSearchMode); ok && v != "" {
		c.Search.Mode = v
	}
	if v, ok := lookup(EnvSearchCaseSensitive); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvSearchCaseSensitive, v, err)
		}
		c.Search.CaseSensitive = b
	}
	return nil
}

// Validate checks the settings for unusable values.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db_path must not be empty"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := c.SearchOptions().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogToStderr reports whether logs go to stderr instead of a file.
func (c Config) LogToStderr() bool {
	f := strings.TrimSpace(c.LogFile)
	return f == "" || f == "-"
}

// SearchOptions converts the search settings for the store.
func (c Config) SearchOptions() storage.SearchOptions {
	return storage.SearchOptions{
		Mode:          storage.MatchMode(strings.ToLower(c.Search.Mode)),
		CaseSensitive: c.Search.CaseSensitive,
	}
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses debug, info, warn or error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
