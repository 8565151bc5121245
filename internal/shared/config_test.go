package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Catalog.BaseURL != "https://api.themoviedb.org/3" {
			t.Errorf("unexpected catalog base URL %s", config.Catalog.BaseURL)
		}
		if config.Catalog.ImageBaseURL != "https://image.tmdb.org/t/p/w500" {
			t.Errorf("unexpected image base URL %s", config.Catalog.ImageBaseURL)
		}
		if config.Database.Path != "mvx.db" {
			t.Errorf("unexpected database path %s", config.Database.Path)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		content := `
[backend]
base_url = "https://backend.example.com"

[catalog]
api_key = "key-123"
base_url = "https://api.example.com/3"
image_base_url = "https://image.example.com/t/p/w500"
language = "de-DE"

[database]
path = "test.db"
max_open_conns = 3
max_idle_conns = 1
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Backend.BaseURL != "https://backend.example.com" {
			t.Errorf("unexpected backend URL %s", config.Backend.BaseURL)
		}
		if config.Catalog.APIKey != "key-123" {
			t.Errorf("unexpected API key %s", config.Catalog.APIKey)
		}
		if config.Catalog.Language != "de-DE" {
			t.Errorf("unexpected language %s", config.Catalog.Language)
		}
		if config.Database.MaxOpenConns != 3 {
			t.Errorf("unexpected max open conns %d", config.Database.MaxOpenConns)
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("MVX_BACKEND_URL", "https://override.example.com")
		t.Setenv("TMDB_API_KEY", "env-key")

		config := DefaultConfig()
		if config.Backend.BaseURL != "https://override.example.com" {
			t.Errorf("expected env override, got %s", config.Backend.BaseURL)
		}
		if config.Catalog.APIKey != "env-key" {
			t.Errorf("expected env override, got %s", config.Catalog.APIKey)
		}
	})

	t.Run("ValidateBackend", func(t *testing.T) {
		config := &Config{}
		if err := config.ValidateBackend(); !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}

		config.Backend.BaseURL = "https://backend.example.com"
		if err := config.ValidateBackend(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("ValidateCatalog", func(t *testing.T) {
		config := &Config{}
		if err := config.ValidateCatalog(); !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}

		config.Catalog.APIKey = "key-123"
		if err := config.ValidateCatalog(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("created config should be loadable: %v", err)
		}
		if config.Catalog.BaseURL == "" {
			t.Error("expected catalog defaults in created config")
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when config already exists")
		}
	})
}
