// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"artquote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing table settings
	Pricing PricingConfig `json:"pricing"`

	// Routing contains route resolution settings
	Routing RoutingConfig `json:"routing"`

	// Quote contains quotation defaults
	Quote QuoteConfig `json:"quote"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing table settings
type PricingConfig struct {
	// FilePath is the path to the pricing table (.hcl or .json)
	FilePath string `json:"file_path"`

	// DefaultCurrency is the quotation currency
	DefaultCurrency string `json:"default_currency"`
}

// RoutingConfig contains route resolution settings
type RoutingConfig struct {
	// BaseURL is the mapping provider endpoint
	BaseURL string `json:"base_url"`

	// APIKeyEnv is the environment variable holding the provider key
	APIKeyEnv string `json:"api_key_env"`

	// TimeoutSeconds bounds the single provider attempt
	TimeoutSeconds int `json:"timeout_seconds"`
}

// QuoteConfig contains quotation defaults
type QuoteConfig struct {
	// DefaultMarginPct is the global margin applied when none is given
	DefaultMarginPct float64 `json:"default_margin_pct"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowBreakdown includes per-flow cost breakdowns
	ShowBreakdown bool `json:"show_breakdown"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	pricingPath := filepath.Join(homeDir, ".artquote", "pricing.hcl")

	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			FilePath:        pricingPath,
			DefaultCurrency: "EUR",
		},
		Routing: RoutingConfig{
			BaseURL:        "https://api.openrouteservice.org/v2/directions/driving-hgv",
			APIKeyEnv:      "ARTQUOTE_ORS_API_KEY",
			TimeoutSeconds: 10,
		},
		Quote: QuoteConfig{
			DefaultMarginPct: 25,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowBreakdown: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
