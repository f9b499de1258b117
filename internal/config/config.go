// Package config handles user configuration for skillbox.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thangchung/skillbox/internal/models"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`             // "dark", "light", or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"` // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`        // Enable word wrap in table cells
}

// HubConfig configures how model assets are fetched
type HubConfig struct {
	Endpoint string `json:"endpoint"` // Hub base URL
	Revision string `json:"revision"` // Repository revision to resolve
	// TimeoutSeconds bounds a single download request
	TimeoutSeconds int `json:"timeout_seconds"`
}

// Config represents the user configuration
type Config struct {
	// DefaultModelName is the name written into exported template records
	DefaultModelName string `json:"default_model_name"`
	// DefaultModelPath is the model directory the exporter targets
	DefaultModelPath string `json:"default_model_path"`
	// Verbose enables detailed output during operations
	Verbose         bool           `json:"verbose"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Hub             HubConfig      `json:"hub,omitempty"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
	}
}

// DefaultHubConfig returns the default hub configuration
func DefaultHubConfig() HubConfig {
	return HubConfig{
		Endpoint:       "https://huggingface.co",
		Revision:       "main",
		TimeoutSeconds: 60,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		DefaultModelName: models.DefaultModelName,
		DefaultModelPath: models.DefaultModelPath,
		Verbose:          false,
		CopyToClipboard:  false,
		Hub:              DefaultHubConfig(),
		Markdown:         DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".skillbox"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Backfill zero-valued hub settings so older config files keep working
	if cfg.Hub.Endpoint == "" {
		cfg.Hub.Endpoint = DefaultHubConfig().Endpoint
	}
	if cfg.Hub.Revision == "" {
		cfg.Hub.Revision = DefaultHubConfig().Revision
	}
	if cfg.Hub.TimeoutSeconds <= 0 {
		cfg.Hub.TimeoutSeconds = DefaultHubConfig().TimeoutSeconds
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	if _, err := EnsureConfigDir(); err != nil {
		return err
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
