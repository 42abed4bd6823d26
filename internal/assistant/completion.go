// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/ngocvb/laptoplens/internal/config"
	"github.com/ngocvb/laptoplens/internal/logging"
	"github.com/ngocvb/laptoplens/internal/metrics"
	"github.com/ngocvb/laptoplens/internal/models"
)

// ErrCompletionUnavailable wraps any text-completion failure. The chat
// pipeline maps it to one canned Vietnamese apology; callers never see
// transport detail.
var ErrCompletionUnavailable = errors.New("completion service unavailable")

// CompletionClient produces one assistant reply from a system prompt
// and a message transcript.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error)
}

// apiVersion is the messages-API revision header value.
const apiVersion = "2023-06-01"

type completionRequest struct {
	Model       string               `json:"model"`
	MaxTokens   int                  `json:"max_tokens"`
	Temperature float64              `json:"temperature"`
	System      string               `json:"system"`
	Messages    []models.ChatMessage `json:"messages"`
}

type completionResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// HTTPCompletionClient calls an Anthropic-style messages endpoint over
// HTTP. Calls go through a circuit breaker so a degraded collaborator
// fails fast instead of tying up request handlers; there is no retry,
// a failed call surfaces immediately.
type HTTPCompletionClient struct {
	cfg     config.AssistantConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[string]
}

var _ CompletionClient = (*HTTPCompletionClient)(nil)

// NewHTTPCompletionClient builds a client from the assistant config.
func NewHTTPCompletionClient(cfg config.AssistantConfig) *HTTPCompletionClient {
	settings := gobreaker.Settings{
		Name:    "completion",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Completion circuit breaker state change")
		},
	}

	return &HTTPCompletionClient{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[string](settings),
	}
}

// Complete sends one messages-API call and returns the first text
// block of the reply.
func (c *HTTPCompletionClient) Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error) {
	start := time.Now()
	text, err := c.breaker.Execute(func() (string, error) {
		return c.complete(ctx, systemPrompt, messages)
	})
	metrics.CompletionRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CompletionErrorsTotal.WithLabelValues("circuit_open").Inc()
			return "", fmt.Errorf("%w: circuit open", ErrCompletionUnavailable)
		}
		return "", err
	}
	return text, nil
}

func (c *HTTPCompletionClient) complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
		System:      systemPrompt,
		Messages:    messages,
	})
	if err != nil {
		metrics.CompletionErrorsTotal.WithLabelValues("request").Inc()
		return "", fmt.Errorf("%w: failed to encode request: %v", ErrCompletionUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		metrics.CompletionErrorsTotal.WithLabelValues("request").Inc()
		return "", fmt.Errorf("%w: failed to build request: %v", ErrCompletionUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.cfg.APIKey)
	req.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.CompletionErrorsTotal.WithLabelValues("request").Inc()
		return "", fmt.Errorf("%w: %v", ErrCompletionUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		metrics.CompletionErrorsTotal.WithLabelValues("status").Inc()
		logging.Ctx(ctx).Warn().
			Int("status", resp.StatusCode).
			Msg("Completion service returned non-200")
		return "", fmt.Errorf("%w: status %d", ErrCompletionUnavailable, resp.StatusCode)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.CompletionErrorsTotal.WithLabelValues("request").Inc()
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrCompletionUnavailable, err)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	metrics.CompletionErrorsTotal.WithLabelValues("request").Inc()
	return "", fmt.Errorf("%w: response had no text block", ErrCompletionUnavailable)
}
