// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

// Package config loads and validates application configuration using
// Koanf v2 with layered sources (highest priority wins):
//
//  1. Environment variables (LAPTOPLENS_SERVER_PORT, DUCKDB_PATH, ...)
//  2. Config file (config.yaml)
//  3. Built-in defaults
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Assistant AssistantConfig `koanf:"assistant"`
	Session   SessionConfig   `koanf:"session"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Host is the bind address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// Timeout bounds request read/write time.
	Timeout time.Duration `koanf:"timeout"`

	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// DatabaseConfig configures the DuckDB catalog store.
type DatabaseConfig struct {
	// Path is the DuckDB database file path.
	Path string `koanf:"path"`

	// MaxMemory caps DuckDB memory usage (e.g. "1GB").
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB thread count; 0 means runtime.NumCPU().
	Threads int `koanf:"threads"`

	// SeedDemoData inserts the bundled demo catalog on startup when the
	// laptops table is empty.
	SeedDemoData bool `koanf:"seed_demo_data"`
}

// AssistantConfig configures the conversational assistant pipeline and
// its text-completion collaborator.
type AssistantConfig struct {
	// Enabled toggles the /chat endpoint. When disabled the rest of the
	// API (catalog, recommend, compare) keeps working.
	Enabled bool `koanf:"enabled"`

	// BaseURL is the text-completion service endpoint.
	BaseURL string `koanf:"base_url"`

	// APIKey authenticates against the text-completion service.
	APIKey string `koanf:"api_key"`

	// Model is the completion model identifier.
	Model string `koanf:"model"`

	// MaxTokens bounds generated output length.
	MaxTokens int `koanf:"max_tokens"`

	// Temperature is the sampling temperature.
	Temperature float64 `koanf:"temperature"`

	// Timeout bounds one completion call.
	Timeout time.Duration `koanf:"timeout"`

	// HistoryWindow is how many trailing conversation messages are sent
	// with each completion request.
	HistoryWindow int `koanf:"history_window"`

	// CandidateLimit caps the candidate set fed to prompt assembly.
	CandidateLimit int `koanf:"candidate_limit"`
}

// SessionConfig configures the conversation-history store.
type SessionConfig struct {
	// Path is the Badger directory for persisted histories.
	Path string `koanf:"path"`

	// InMemory runs Badger without disk persistence (tests, dev).
	InMemory bool `koanf:"in_memory"`

	// MaxMessages is the per-session history cap; older messages are
	// trimmed first (bounded FIFO).
	MaxMessages int `koanf:"max_messages"`
}

// APIConfig configures API behavior and protection.
type APIConfig struct {
	// DefaultPageSize is the page size when none is requested.
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize caps requested page sizes.
	MaxPageSize int `koanf:"max_page_size"`

	// RateLimitReqs is the allowed requests per window per client IP.
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for internally inconsistent or
// unusable values. It is called by Load after all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range [1, 65535]", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size %d must be >= api.default_page_size %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.Session.MaxMessages < 1 {
		return fmt.Errorf("session.max_messages must be at least 1, got %d", c.Session.MaxMessages)
	}
	if c.Assistant.Enabled {
		if c.Assistant.BaseURL == "" {
			return fmt.Errorf("assistant.base_url required when assistant is enabled")
		}
		if c.Assistant.APIKey == "" {
			return fmt.Errorf("assistant.api_key required when assistant is enabled")
		}
		if c.Assistant.HistoryWindow < 0 {
			return fmt.Errorf("assistant.history_window must not be negative, got %d", c.Assistant.HistoryWindow)
		}
		if c.Assistant.CandidateLimit < 1 {
			return fmt.Errorf("assistant.candidate_limit must be at least 1, got %d", c.Assistant.CandidateLimit)
		}
	}
	return nil
}
