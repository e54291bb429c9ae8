package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the downloader configuration. Flags override whatever was
// loaded from file.
type Config struct {
	Feed     FeedConfig   `json:"feed" yaml:"feed"`
	Output   OutputConfig `json:"output" yaml:"output"`
	LogLevel string       `json:"log_level" yaml:"log_level"`
}

// FeedConfig controls how the datafeed is contacted.
type FeedConfig struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	Timeout string `json:"timeout" yaml:"timeout"` // e.g. "30s"
	Workers int    `json:"workers" yaml:"workers"`
	Delay   string `json:"delay,omitempty" yaml:"delay,omitempty"` // polite per-request pause
}

// ParseTimeout converts the timeout string to a duration.
func (fc FeedConfig) ParseTimeout() (time.Duration, error) {
	if fc.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(fc.Timeout)
}

// ParseDelay converts the delay string to a duration.
func (fc FeedConfig) ParseDelay() (time.Duration, error) {
	if fc.Delay == "" {
		return 0, nil
	}
	return time.ParseDuration(fc.Delay)
}

// OutputConfig controls persistence of the downloaded dataset.
type OutputConfig struct {
	Dir    string `json:"dir" yaml:"dir"`
	Format string `json:"format" yaml:"format"` // "csv", "sqlite" or "parquet"
	Save   bool   `json:"save" yaml:"save"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Feed.BaseURL == "" {
		return fmt.Errorf("feed.base_url is required")
	}
	timeout, err := c.Feed.ParseTimeout()
	if err != nil {
		return fmt.Errorf("feed.timeout: %w", err)
	}
	if timeout <= 0 {
		return fmt.Errorf("feed.timeout must be positive")
	}
	if _, err := c.Feed.ParseDelay(); err != nil {
		return fmt.Errorf("feed.delay: %w", err)
	}
	if c.Feed.Workers < 1 {
		return fmt.Errorf("feed.workers must be at least 1")
	}
	switch c.Output.Format {
	case "csv", "sqlite", "parquet":
	default:
		return fmt.Errorf("output.format must be 'csv', 'sqlite' or 'parquet'")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Feed: FeedConfig{
			BaseURL: "https://datafeed.dukascopy.com/datafeed",
			Timeout: "30s",
			Workers: 1,
		},
		Output: OutputConfig{
			Dir:    "data/raw",
			Format: "csv",
			Save:   true,
		},
		LogLevel: "info",
	}
}
