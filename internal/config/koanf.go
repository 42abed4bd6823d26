// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/laptoplens/config.yaml",
	"/etc/laptoplens/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the
// config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all sensible default values.
// These are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8386,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:         "/data/laptoplens.duckdb",
			MaxMemory:    "1GB",
			Threads:      0, // 0 = runtime.NumCPU()
			SeedDemoData: false,
		},
		Assistant: AssistantConfig{
			Enabled:        false, // Opt-in: requires an API key
			BaseURL:        "https://api.anthropic.com",
			APIKey:         "",
			Model:          "claude-3-haiku-20240307",
			MaxTokens:      1000,
			Temperature:    0.7,
			Timeout:        30 * time.Second,
			HistoryWindow:  5,
			CandidateLimit: 15,
		},
		Session: SessionConfig{
			Path:        "/data/sessions",
			InMemory:    false,
			MaxMessages: 10,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML config file (if exists)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// CORS origins may arrive as a comma-separated string from env
	if raw := k.String("api.cors_origins"); raw != "" && strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if err := k.Set("api.cors_origins", parts); err != nil {
			return nil, fmt.Errorf("failed to split api.cors_origins: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps environment variable names to koanf config paths.
//
// Examples:
//   - LAPTOPLENS_SERVER_PORT -> server.port
//   - LAPTOPLENS_ASSISTANT_API_KEY -> assistant.api_key
//   - DUCKDB_PATH -> database.path (legacy alias)
//   - HTTP_PORT -> server.port (legacy alias)
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	// Short aliases kept for docker-compose compatibility
	aliases := map[string]string{
		"duckdb_path":       "database.path",
		"seed_demo_data":    "database.seed_demo_data",
		"http_port":         "server.port",
		"environment":       "server.environment",
		"log_level":         "logging.level",
		"log_format":        "logging.format",
		"anthropic_api_key": "assistant.api_key",
	}
	if mapped, ok := aliases[key]; ok {
		return mapped
	}

	const prefix = "laptoplens_"
	if !strings.HasPrefix(key, prefix) {
		return "" // Ignore unrelated environment variables
	}
	key = strings.TrimPrefix(key, prefix)

	// First underscore separates the section; the rest is the field name
	// (fields themselves use snake_case, e.g. assistant_api_key).
	parts := strings.SplitN(key, "_", 2)
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + "." + parts[1]
}
