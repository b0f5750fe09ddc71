package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when the config file does not override them.
const (
	DefaultScheduleURL = "https://rasp.rea.ru/"
	DefaultGroup       = "15.14д-гг01/24м"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	ScheduleURL string   `json:"schedule_url,omitempty"`
	Group       string   `json:"group,omitempty"`
	SavedGroups []string `json:"saved_groups,omitempty"`
	AccentColor string   `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.raspctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".raspctl.json"), nil
}

// Load reads the application configuration from disk.
// A missing file yields the defaults rather than an error.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyDefaults(&AppConfig{}), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return applyDefaults(&cfg), nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func applyDefaults(cfg *AppConfig) *AppConfig {
	if cfg.ScheduleURL == "" {
		cfg.ScheduleURL = DefaultScheduleURL
	}
	if cfg.Group == "" {
		cfg.Group = DefaultGroup
	}
	return cfg
}
