// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

// Package main is the entry point for the Laptoplens server.
//
// Laptoplens is a laptop catalog advisory service for the Vietnamese
// market. It serves a filtered catalog, use-case based recommendations
// with weighted scoring, side-by-side comparisons, and a Vietnamese
// conversational shopping assistant grounded in real inventory.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables and config file (Koanf v2)
//  2. Catalog store: DuckDB with the laptops table, optional demo seed
//  3. Session store: BadgerDB conversation histories with 24h TTL
//  4. Recommendation engine: profile-weighted scoring over the catalog
//  5. Assistant: security filter, intent classifier, prompt renderer,
//     and the text-completion client behind a circuit breaker
//  6. HTTP server: Chi REST API plus Prometheus /metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (LAPTOPLENS_SERVER_PORT, ...)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// The assistant is optional. Without ASSISTANT_ENABLED=true the /chat
// endpoint answers 503 while catalog, recommend, compare, and search
// keep working.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the session store and the catalog database
//
// # Example Usage
//
// Development with the bundled demo catalog and no assistant:
//
//	export LAPTOPLENS_DATABASE_SEED_DEMO_DATA=true
//	./laptoplens
//
// Production with the assistant enabled:
//
//	export LAPTOPLENS_ASSISTANT_ENABLED=true
//	export LAPTOPLENS_ASSISTANT_BASE_URL=https://api.anthropic.com
//	export LAPTOPLENS_ASSISTANT_API_KEY=your-api-key
//	./laptoplens
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ngocvb/laptoplens/internal/api"
	"github.com/ngocvb/laptoplens/internal/assistant"
	"github.com/ngocvb/laptoplens/internal/catalog"
	"github.com/ngocvb/laptoplens/internal/config"
	"github.com/ngocvb/laptoplens/internal/logging"
	"github.com/ngocvb/laptoplens/internal/recommend"
	"github.com/ngocvb/laptoplens/internal/session"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Bool("assistant_enabled", cfg.Assistant.Enabled).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	store, err := catalog.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize catalog database")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog database")
		}
	}()
	logging.Info().Msg("Catalog database initialized")

	if cfg.Database.SeedDemoData {
		if err := catalog.SeedIfEmpty(context.Background(), store); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed demo catalog")
		}
		logging.Info().Msg("Demo catalog seeding enabled (SEED_DEMO_DATA=true)")
	}

	sessions, err := session.New(&cfg.Session)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize session store")
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	engine := recommend.NewEngine(store)

	// The completion client only exists when the assistant is enabled.
	// The service itself is always wired because sanitized catalog
	// search goes through it too.
	var completion assistant.CompletionClient
	if cfg.Assistant.Enabled {
		completion = assistant.NewHTTPCompletionClient(cfg.Assistant)
		logging.Info().
			Str("model", cfg.Assistant.Model).
			Int("history_window", cfg.Assistant.HistoryWindow).
			Msg("Assistant enabled")
	} else {
		logging.Info().Msg("Assistant disabled (ASSISTANT_ENABLED=false)")
	}
	svc := assistant.NewService(cfg.Assistant, engine, store, completion)

	handler := api.NewHandler(cfg, store, engine, svc, sessions)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serverErr <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed, forcing close")
		_ = server.Close()
	}

	logging.Info().Msg("Application stopped gracefully")
}
