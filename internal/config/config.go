package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDir      = ".gorevce"
	configFileName = "config.json"
)

// Config stores the CLI configuration.
type Config struct {
	APIBaseURL string `json:"api_base_url"`
	// Default due-date filter applied by 'task list' when no flag is given
	// (today, tomorrow, week, none, overdue, future or a YYYY-MM-DD date).
	DefaultDueFilter string `json:"default_due_filter,omitempty"`
}

// GetConfigPath returns the path to the config file (~/.gorevce/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, configFileName), nil
}

// Load reads the CLI config, returning defaults when no file exists yet.
func Load() (*Config, error) {
	cfg := &Config{APIBaseURL: "http://localhost:8080"}

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080"
	}
	return cfg, nil
}

// Save writes the CLI config, creating ~/.gorevce if needed.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
