package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Backend  BackendConfig  `toml:"backend"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Database DatabaseConfig `toml:"database"`
}

// BackendConfig contains settings for the watchlist backend collaborator.
type BackendConfig struct {
	BaseURL string `toml:"base_url"`
}

// CatalogConfig contains settings for the TMDB catalog collaborator.
type CatalogConfig struct {
	APIKey       string `toml:"api_key"`
	BaseURL      string `toml:"base_url"`
	ImageBaseURL string `toml:"image_base_url"`
	Language     string `toml:"language"`
}

// DatabaseConfig contains local SQLite settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified
// path, then applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with defaults loaded from the embedded
// example config, with environment overrides applied.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// LoadDotenv loads a .env file into the process environment if one exists.
// A missing file is not an error.
func LoadDotenv() {
	_ = godotenv.Load()
}

// applyEnv overrides config values from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("MVX_BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		c.Catalog.APIKey = v
	}
}

// ValidateBackend checks that the backend collaborator is configured.
func (c *Config) ValidateBackend() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("%w: backend base_url is not set (config or MVX_BACKEND_URL)", ErrMissingConfig)
	}
	return nil
}

// ValidateCatalog checks that the catalog collaborator is configured.
func (c *Config) ValidateCatalog() error {
	if c.Catalog.APIKey == "" {
		return fmt.Errorf("%w: catalog api_key is not set (config or TMDB_API_KEY)", ErrMissingConfig)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the
// embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
