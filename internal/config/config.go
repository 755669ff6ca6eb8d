// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/chuymedina96/chicago-3d-printworks/core/pricing"
	"github.com/chuymedina96/chicago-3d-printworks/core/types"
	"github.com/chuymedina96/chicago-3d-printworks/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains server configuration
	Server ServerConfig `json:"server"`

	// Pricing is the active pricing model snapshot
	Pricing types.PricingModel `json:"pricing"`

	// Ladder is the batch discount ladder
	Ladder []types.TierSpec `json:"ladder"`

	// Materials contains material catalog configuration
	Materials MaterialsConfig `json:"materials"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains server-related settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// WorkspaceDB is the path to the saved-quote SQLite database
	WorkspaceDB string `json:"workspace_db"`
}

// MaterialsConfig contains material catalog settings
type MaterialsConfig struct {
	// CatalogPath overrides the embedded catalog when set
	CatalogPath string `json:"catalog_path,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".c3dpw", "workspace.db")

	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:        ":8000",
			WorkspaceDB: dbPath,
		},
		Pricing: types.PricingModel{
			BaseFee:         5,
			HourlyRate:      8,
			PostprocessFee:  0,
			MachineCm3PerHr: 46,
		},
		Ladder:  pricing.DefaultLadder(),
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when
// the file does not exist.
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
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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
