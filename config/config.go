// Package config loads the readmetrics YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/readmetrics"
)

// DefaultPath is used when neither --config nor READMETRICS_CONFIG is set.
const DefaultPath = "./readmetrics.yaml"

// DefaultFetchTimeoutSecs bounds each fetch when no positive timeout is set.
const DefaultFetchTimeoutSecs = 30

// Config holds all run configuration.
type Config struct {
	Input            string   `yaml:"input"`
	Output           string   `yaml:"output"`
	PositiveWords    []string `yaml:"positive_words"`
	NegativeWords    []string `yaml:"negative_words"`
	Stopwords        []string `yaml:"stopwords"`
	BuiltinStopwords string   `yaml:"builtin_stopwords"`
	FetchTimeoutSecs int      `yaml:"fetch_timeout_secs"`
	UserAgent        string   `yaml:"user_agent"`
	MaxBodyBytes     int64    `yaml:"max_body_bytes"`
	LogLevel         string   `yaml:"log_level"`
	LogFormat        string   `yaml:"log_format"`
}

// GetConfigPath returns the config file path from environment or default.
func GetConfigPath() string {
	if path := os.Getenv("READMETRICS_CONFIG"); path != "" {
		return path
	}
	return DefaultPath
}

// Load reads configuration from a YAML file and applies defaults. A missing
// file at DefaultPath yields the defaults; a missing file anywhere else is an
// error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	applyDefaults(cfg)
	applyEnvironmentOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Input == "" {
		cfg.Input = "Input.xlsx"
	}
	if cfg.Output == "" {
		cfg.Output = "output.csv"
	}
	if len(cfg.PositiveWords) == 0 {
		cfg.PositiveWords = []string{"positive-words.txt"}
	}
	if len(cfg.NegativeWords) == 0 {
		cfg.NegativeWords = []string{"negative-words.txt"}
	}
	if len(cfg.Stopwords) == 0 {
		cfg.Stopwords = append([]string(nil), readmetrics.DefaultStopwordFiles...)
	}
	if cfg.FetchTimeoutSecs == 0 {
		cfg.FetchTimeoutSecs = DefaultFetchTimeoutSecs
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
}

func applyEnvironmentOverrides(cfg *Config) {
	if input := os.Getenv("READMETRICS_INPUT"); input != "" {
		cfg.Input = input
	}
	if output := os.Getenv("READMETRICS_OUTPUT"); output != "" {
		cfg.Output = output
	}
}

// Validate checks values that defaults cannot repair.
func (cfg *Config) Validate() error {
	if cfg.FetchTimeoutSecs < 0 {
		return fmt.Errorf("fetch_timeout_secs must not be negative, got %d", cfg.FetchTimeoutSecs)
	}
	if cfg.MaxBodyBytes < 0 {
		return fmt.Errorf("max_body_bytes must not be negative, got %d", cfg.MaxBodyBytes)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.BuiltinStopwords != "" {
		if _, err := readmetrics.NewLanguageStopwords(cfg.BuiltinStopwords); err != nil {
			return err
		}
	}
	return nil
}

// Level parses LogLevel.
func (cfg *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	return level, nil
}

// FetchTimeout returns the per-fetch bound. Zero, whether from the file or a
// flag, means DefaultFetchTimeoutSecs; fetches are never unbounded.
func (cfg *Config) FetchTimeout() time.Duration {
	secs := cfg.FetchTimeoutSecs
	if secs <= 0 {
		secs = DefaultFetchTimeoutSecs
	}
	return time.Duration(secs) * time.Second
}

// LexiconPaths returns the configured lexicon sources.
func (cfg *Config) LexiconPaths() readmetrics.LexiconPaths {
	return readmetrics.LexiconPaths{
		Positive: cfg.PositiveWords,
		Negative: cfg.NegativeWords,
		Stop:     cfg.Stopwords,
	}
}
