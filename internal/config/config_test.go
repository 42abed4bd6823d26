// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	t.Run("server defaults", func(t *testing.T) {
		if cfg.Server.Port != 8386 {
			t.Errorf("Server.Port = %d, want 8386", cfg.Server.Port)
		}
		if cfg.Server.Timeout <= 0 {
			t.Errorf("Server.Timeout = %v, want > 0", cfg.Server.Timeout)
		}
	})

	t.Run("assistant disabled by default", func(t *testing.T) {
		if cfg.Assistant.Enabled {
			t.Error("Assistant.Enabled = true, want false (opt-in)")
		}
		if cfg.Assistant.HistoryWindow != 5 {
			t.Errorf("Assistant.HistoryWindow = %d, want 5", cfg.Assistant.HistoryWindow)
		}
		if cfg.Assistant.CandidateLimit != 15 {
			t.Errorf("Assistant.CandidateLimit = %d, want 15", cfg.Assistant.CandidateLimit)
		}
	})

	t.Run("session trims to last 10", func(t *testing.T) {
		if cfg.Session.MaxMessages != 10 {
			t.Errorf("Session.MaxMessages = %d, want 10", cfg.Session.MaxMessages)
		}
	})

	t.Run("defaults validate", func(t *testing.T) {
		if err := cfg.Validate(); err != nil {
			t.Errorf("default config fails validation: %v", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, true},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, true},
		{"page size zero", func(c *Config) { c.API.DefaultPageSize = 0 }, true},
		{"max below default page size", func(c *Config) { c.API.MaxPageSize = 5 }, true},
		{"session cap zero", func(c *Config) { c.Session.MaxMessages = 0 }, true},
		{
			"assistant enabled without key",
			func(c *Config) { c.Assistant.Enabled = true; c.Assistant.APIKey = "" },
			true,
		},
		{
			"assistant enabled without base url",
			func(c *Config) {
				c.Assistant.Enabled = true
				c.Assistant.APIKey = "sk-test"
				c.Assistant.BaseURL = ""
			},
			true,
		},
		{
			"assistant enabled fully configured",
			func(c *Config) {
				c.Assistant.Enabled = true
				c.Assistant.APIKey = "sk-test"
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"LAPTOPLENS_SERVER_PORT", "server.port"},
		{"LAPTOPLENS_SERVER_ENVIRONMENT", "server.environment"},
		{"LAPTOPLENS_DATABASE_MAX_MEMORY", "database.max_memory"},
		{"LAPTOPLENS_ASSISTANT_API_KEY", "assistant.api_key"},
		{"LAPTOPLENS_API_RATE_LIMIT_REQS", "api.rate_limit_reqs"},
		{"DUCKDB_PATH", "database.path"},
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"ANTHROPIC_API_KEY", "assistant.api_key"},
		{"PATH", ""},     // unrelated env vars are ignored
		{"HOSTNAME", ""}, // unrelated env vars are ignored
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LAPTOPLENS_SERVER_PORT", "9090")
	t.Setenv("LAPTOPLENS_DATABASE_PATH", "/tmp/test.duckdb")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/test.duckdb" {
		t.Errorf("Database.Path = %q, want /tmp/test.duckdb", cfg.Database.Path)
	}
}

func TestLoad_CORSOriginsFromCommaSeparated(t *testing.T) {
	t.Setenv("LAPTOPLENS_API_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.API.CORSOrigins) != 2 {
		t.Fatalf("CORSOrigins = %v, want 2 entries", cfg.API.CORSOrigins)
	}
	if cfg.API.CORSOrigins[0] != "https://a.example" || cfg.API.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v, want trimmed entries", cfg.API.CORSOrigins)
	}
}
