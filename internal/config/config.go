// Package config loads server configuration from the environment and
// an optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything cmd/api and cmd/seed need at startup.
type Config struct {
	Addr        string `yaml:"addr"`
	DatabaseURL string `yaml:"database_url"`
	RedisAddr   string `yaml:"redis_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Load builds the configuration: defaults first, then the YAML file
// named by FWITTER_CONFIG (if set), then environment variables. A .env
// file in the working directory is honoured.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:     ":8080",
		LogLevel: "info",
	}

	if path := os.Getenv("FWITTER_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
