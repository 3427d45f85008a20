// Package config handles application configuration management.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all areuok data (config dir + "areuok")
	BaseDir string

	// Remote mirror API settings
	Remote RemoteConfig

	// Quote API settings
	Quote QuoteConfig
}

// RemoteConfig holds settings for the optional remote mirror API.
type RemoteConfig struct {
	// BaseURL of the mirror server. Empty disables remote commands.
	BaseURL string
	// Timeout for a single request.
	Timeout time.Duration
	// RateLimit is requests per minute against the mirror.
	RateLimit int
}

// DefaultRemoteConfig returns sensible defaults.
func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		BaseURL:   "http://localhost:3000",
		Timeout:   15 * time.Second,
		RateLimit: 60,
	}
}

// QuoteConfig holds settings for the daily quote API.
type QuoteConfig struct {
	// URL of the quote endpoint.
	URL string
	// Timeout for the fetch. The quote is best-effort, keep this short.
	Timeout time.Duration
}

// DefaultQuoteConfig returns sensible defaults.
func DefaultQuoteConfig() QuoteConfig {
	return QuoteConfig{
		URL:     "https://v1.hitokoto.cn/",
		Timeout: 5 * time.Second,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),
		Remote:  DefaultRemoteConfig(),
		Quote:   DefaultQuoteConfig(),
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv("AREUOK_BASE_DIR"); dir != "" {
		cfg.BaseDir = dir
	}

	if url := os.Getenv("AREUOK_REMOTE_URL"); url != "" {
		cfg.Remote.BaseURL = url
	}

	if url := os.Getenv("AREUOK_QUOTE_URL"); url != "" {
		cfg.Quote.URL = url
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	dirs := []string{
		cfg.BaseDir,
		filepath.Join(cfg.BaseDir, "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
