package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the extraction server configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// ReadTimeoutSec / WriteTimeoutSec bound a single HTTP exchange.
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`

	// MaxRequestSize is the request body limit in bytes. OCR output for a
	// one-page newsletter is a few kilobytes; anything near the limit is
	// almost certainly not a newsletter.
	MaxRequestSize int `yaml:"max_request_size"`

	// WarmUp pre-touches pattern families and pools on startup.
	WarmUp bool `yaml:"warm_up"`

	// LogFile is the log destination; empty means stdout.
	LogFile string `yaml:"log_file"`
	// LogJSON switches the log format to JSON lines.
	LogJSON bool `yaml:"log_json"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:          ":8080",
		ReadTimeoutSec:  30,
		WriteTimeoutSec: 30,
		MaxRequestSize:  10 * 1024 * 1024,
		WarmUp:          true,
	}
}

// ReadTimeout returns the read timeout as a duration.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSec) * time.Second
}

// Load reads a YAML config file, layering it over the defaults. A missing
// file is not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return errors.New("listen address must not be empty")
	}
	if c.ReadTimeoutSec <= 0 || c.WriteTimeoutSec <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.MaxRequestSize <= 0 {
		return errors.New("max_request_size must be positive")
	}
	return nil
}
