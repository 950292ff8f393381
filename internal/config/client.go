package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"

	"gopkg.in/yaml.v3"
)

// ClientConfig holds the settings of the summarize command line tool.
type ClientConfig struct {
	Endpoint     string `yaml:"endpoint"`      // Base URL serving /api/upload
	Length       string `yaml:"length"`        // Initial length selection
	LogLevel     string `yaml:"log_level"`     // debug, info, warn or error
	LogFile      string `yaml:"log_file"`      // Where the TUI writes logs; empty discards them
	SingleFlight bool   `yaml:"single_flight"` // Refuse new uploads while one is running
}

func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Endpoint: "http://localhost:8080",
		Length:   models.DefaultLength,
		LogLevel: "warn",
	}
}

// DefaultClientConfigPath is ~/.config/summarize/config.yaml.
func DefaultClientConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "summarize", "config.yaml"), nil
}

// LoadClient reads the YAML file at path on top of the defaults, then applies
// SUMMARIZER_URL, SUMMARIZER_LENGTH and LOG_LEVEL. A missing file is not an
// error.
func LoadClient(path string) (*ClientConfig, error) {
	cfg := DefaultClientConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.Endpoint = getEnv("SUMMARIZER_URL", cfg.Endpoint)
	cfg.Length = getEnv("SUMMARIZER_LENGTH", cfg.Length)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ClientConfig) Validate() error {
	if err := validateURL(c.Endpoint); err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	return nil
}
