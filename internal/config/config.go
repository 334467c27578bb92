// Package config loads emograph settings from YAML files and the environment.
//
// Settings are layered: defaults, then ~/.emograph/config.yaml, then
// <root>/.emograph/config.yaml, then EMOGRAPH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Environment overrides.
const (
	EnvTopK    = "EMOGRAPH_TOP_K"
	EnvLexicon = "EMOGRAPH_LEXICON"
)

// Config holds emograph settings.
type Config struct {
	TopK            int                `yaml:"top_k" json:"top_k"`
	LexiconPath     string             `yaml:"lexicon_path,omitempty" json:"lexicon_path,omitempty"`
	Priorities      map[string]float64 `yaml:"priorities,omitempty" json:"priorities,omitempty"`
	VerseThresholds []float64          `yaml:"verse_thresholds,omitempty" json:"verse_thresholds,omitempty"`
	Log             LogConfig          `yaml:"log" json:"log"`
	Metrics         MetricsConfig      `yaml:"metrics" json:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // text, json
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics. Empty disables it.
	Addr string `yaml:"addr,omitempty" json:"addr,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TopK: 3,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load layers the global and project config files and the environment over
// the defaults. Missing files are skipped. A relative lexicon_path is resolved
// against the directory of the file that sets it; EMOGRAPH_LEXICON is left
// relative to the working directory.
func Load(root string) (*Config, error) {
	cfg := Default()

	if global, err := GlobalPath(); err == nil {
		if err := cfg.merge(filepath.Join(global, FileName)); err != nil {
			return nil, err
		}
	}
	if err := cfg.merge(filepath.Join(LocalPath(root), FileName)); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a single config file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge overlays the file at path, if it exists.
func (c *Config) merge(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	inherited := c.LexiconPath
	c.LexiconPath = ""
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	switch {
	case c.LexiconPath == "":
		c.LexiconPath = inherited
	case !filepath.IsAbs(c.LexiconPath):
		c.LexiconPath = filepath.Join(filepath.Dir(path), c.LexiconPath)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvTopK); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvTopK, v)
		}
		c.TopK = k
	}
	if v := os.Getenv(EnvLexicon); v != "" {
		c.LexiconPath = v
	}
	return nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.TopK < 1 {
		return fmt.Errorf("%w: top_k must be at least 1, got %d", ErrInvalid, c.TopK)
	}
	for id, p := range c.Priorities {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return fmt.Errorf("%w: priority for %q must be positive, got %v", ErrInvalid, id, p)
		}
	}
	for _, th := range c.VerseThresholds {
		if math.IsNaN(th) || math.IsInf(th, 0) {
			return fmt.Errorf("%w: verse threshold %v is not finite", ErrInvalid, th)
		}
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Save writes c to path as YAML.
func Save(path string, c *Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// NewLogger builds a slog logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch l.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalid, l.Format)
	}
}

func parseLevel(s string) (slog.Level, error) {
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
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalid, s)
	}
}
