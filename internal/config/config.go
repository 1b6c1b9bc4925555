// Package config handles loading the taskdeck configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables that override the config file. They exist so
// tests and scripts can point the CLI at a scratch server and token.
const (
	EnvEndpoint  = "TASKDECK_ENDPOINT"
	EnvTokenFile = "TASKDECK_TOKEN_FILE"
)

// DefaultEndpoint is used when neither the config file nor the
// environment names an API endpoint.
const DefaultEndpoint = "http://localhost:3000/graphql"

// Config represents the taskdeck config.toml configuration file.
type Config struct {
	API  API  `toml:"api"`
	Auth Auth `toml:"auth"`
}

// API contains remote endpoint configuration.
type API struct {
	// Endpoint is the URL of the task API.
	Endpoint string `toml:"endpoint"`
}

// Auth contains credential storage configuration.
type Auth struct {
	// TokenFile is where the session token is stored.
	TokenFile string `toml:"token-file"`
}

// Load reads the global config file and applies environment overrides.
// Returns a config with defaults filled in if no file exists.
func Load() (*Config, error) {
	path, err := globalConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "taskdeck", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if endpoint := strings.TrimSpace(os.Getenv(EnvEndpoint)); endpoint != "" {
		cfg.API.Endpoint = endpoint
	}
	if tokenFile := strings.TrimSpace(os.Getenv(EnvTokenFile)); tokenFile != "" {
		cfg.Auth.TokenFile = tokenFile
	}
}

func applyDefaults(cfg *Config) {
	if cfg.API.Endpoint == "" {
		cfg.API.Endpoint = DefaultEndpoint
	}
	if cfg.Auth.TokenFile == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.Auth.TokenFile = filepath.Join(homeDir, ".config", "taskdeck", "token")
		}
	}
}
