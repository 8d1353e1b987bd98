// Package config provides configuration loading and validation for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults used when the environment does not say otherwise. The session
// secret has a development default because login is simulated: the token
// only identifies the local session, it protects nothing.
const (
	DefaultPort          = 8080
	defaultDataDirName   = ".portfolio-studio"
	defaultSessionSecret = "portfolio-studio-dev-secret"
)

// Config represents application configuration loaded from the environment.
type Config struct {
	DataDir       string // Directory holding the SQLite database
	Port          int    // HTTP port for the UI bridge
	SessionSecret string // HMAC secret for session tokens
	GeminiAPIKey  string // Optional; enables the about-text assistant
}

// Load reads configuration from environment variables, applying defaults for
// anything unset. It never requires a variable: the tool works out of the box.
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:       os.Getenv("PORTFOLIO_DATA_DIR"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		Port:          DefaultPort,
	}

	if portStr := os.Getenv("PORTFOLIO_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORTFOLIO_PORT: %v", err)
		}
		cfg.Port = port
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, defaultDataDirName)
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = defaultSessionSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port out of range: %d", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("config error: data directory is empty")
	}
	return nil
}
