// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

// Package assistant implements the conversational shopping assistant:
// input sanitization, sensitive-topic blocking, intent classification,
// preference extraction, prompt assembly grounded in real inventory,
// and the text-completion collaborator call.
package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ngocvb/laptoplens/internal/catalog"
	"github.com/ngocvb/laptoplens/internal/config"
	"github.com/ngocvb/laptoplens/internal/logging"
	"github.com/ngocvb/laptoplens/internal/metrics"
	"github.com/ngocvb/laptoplens/internal/models"
	"github.com/ngocvb/laptoplens/internal/recommend"
)

const (
	// invalidInputMessage answers messages that sanitize to nothing.
	invalidInputMessage = "Tin nhắn không hợp lệ. Vui lòng nhập câu hỏi về laptop."

	// completionFailedMessage answers any collaborator failure.
	completionFailedMessage = "Xin lỗi, đã có lỗi xảy ra. Vui lòng thử lại sau."

	// recommendationFooterCap is how many products the recommend-intent
	// footer lists.
	recommendationFooterCap = 3
)

// searchTokenPattern splits a sanitized query into word tokens.
// Vietnamese needs the Unicode letter class, not ASCII \w.
var searchTokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Reply is the outcome of one chat pipeline run.
type Reply struct {
	// Success is false only for invalid input or a collaborator failure.
	Success bool `json:"success"`

	// Response is the text to show the user. On Success=false it holds
	// the canned Vietnamese error message.
	Response string `json:"response"`

	// Blocked reports whether the security filter answered instead of
	// the completion service.
	Blocked bool `json:"blocked"`

	// Category is the block category when Blocked, or "invalid_input".
	Category string `json:"category,omitempty"`

	// Intent is the detected conversational goal.
	Intent Intent `json:"intent"`

	// Preferences is the structured profile extracted from the message.
	Preferences models.PreferenceProfile `json:"preferences"`

	// RelevantLaptops is the candidate inventory that grounded the
	// prompt, cheapest first.
	RelevantLaptops []models.Laptop `json:"relevant_laptops"`
}

// Service runs the chat pipeline.
type Service struct {
	cfg    config.AssistantConfig
	engine *recommend.Engine
	store  catalog.Store
	client CompletionClient
}

// NewService wires the pipeline to a recommendation engine, the
// catalog store, and a completion client.
func NewService(cfg config.AssistantConfig, engine *recommend.Engine, store catalog.Store, client CompletionClient) *Service {
	return &Service{cfg: cfg, engine: engine, store: store, client: client}
}

// GenerateResponse runs the full pipeline for one user message:
// sanitize, block check, intent, preferences, inventory candidates,
// prompt render, completion call, outbound validation, and the
// recommend-intent product footer.
//
// Security refusals are successful replies (the user gets a clear
// answer); only invalid input and collaborator failures report
// Success=false. The error return is reserved for catalog faults.
func (s *Service) GenerateResponse(ctx context.Context, message string, history []models.ChatMessage) (Reply, error) {
	sanitized := Sanitize(message)
	if sanitized == "" {
		return Reply{
			Success:  false,
			Response: invalidInputMessage,
			Blocked:  true,
			Category: "invalid_input",
		}, nil
	}

	if blocked, category, response := IsQueryBlocked(sanitized); blocked {
		logging.Ctx(ctx).Warn().
			Str("category", category).
			Msg("Chat query blocked by security filter")
		return Reply{
			Success:  true,
			Response: response,
			Blocked:  true,
			Category: category,
			Intent:   IntentBlocked,
		}, nil
	}

	intent := ClassifyIntent(sanitized)
	metrics.ChatRequestsTotal.WithLabelValues(string(intent)).Inc()

	prefs := ExtractPreferences(sanitized)

	candidates, err := s.engine.CandidatesByPreferences(ctx, prefs, s.cfg.CandidateLimit)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to load chat candidates: %w", err)
	}

	systemPrompt := RenderPrompt(intent, prefs, candidates, history)
	messages := s.transcript(sanitized, history)

	text, err := s.client.Complete(ctx, systemPrompt, messages)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Completion call failed")
		return Reply{
			Success:  false,
			Response: completionFailedMessage,
			Intent:   intent,
		}, nil
	}

	response := ValidateResponse(text)
	if intent == IntentRecommend && len(candidates) > 0 {
		response += formatRecommendations(candidates)
	}

	return Reply{
		Success:         true,
		Response:        response,
		Intent:          intent,
		Preferences:     prefs,
		RelevantLaptops: candidates,
	}, nil
}

// transcript assembles the completion message list: the trailing
// history window (re-sanitized, empties dropped) plus the current
// message.
func (s *Service) transcript(sanitized string, history []models.ChatMessage) []models.ChatMessage {
	tail := history
	if s.cfg.HistoryWindow > 0 && len(tail) > s.cfg.HistoryWindow {
		tail = tail[len(tail)-s.cfg.HistoryWindow:]
	}

	messages := make([]models.ChatMessage, 0, len(tail)+1)
	for _, msg := range tail {
		if content := Sanitize(msg.Content); content != "" {
			messages = append(messages, models.ChatMessage{Role: msg.Role, Content: content})
		}
	}
	return append(messages, models.ChatMessage{Role: "user", Content: sanitized})
}

// formatRecommendations renders the Vietnamese product footer appended
// to recommend-intent replies.
func formatRecommendations(laptops []models.Laptop) string {
	if len(laptops) > recommendationFooterCap {
		laptops = laptops[:recommendationFooterCap]
	}

	var b strings.Builder
	b.WriteString("\n\n**💻 Laptop phù hợp nhất:**\n")
	for i, l := range laptops {
		fmt.Fprintf(&b, "\n**%d. %s**\n", i+1, l.Name)
		fmt.Fprintf(&b, "• **Giá:** %s\n", models.FormatPrice(l.Price))
		fmt.Fprintf(&b, "• **CPU:** %s\n", l.CPU)
		fmt.Fprintf(&b, "• **RAM:** %dGB\n", l.RAMGB)
		if l.GPU != "" {
			fmt.Fprintf(&b, "• **GPU:** %s\n", l.GPU)
		}
		fmt.Fprintf(&b, "• **Storage:** %s\n", l.Storage)
		fmt.Fprintf(&b, "• **Màn hình:** %s\n", l.Screen)
	}
	b.WriteString("\n💡 **Gợi ý:** Bạn có thể xem chi tiết và so sánh các laptop này trên website!")
	return b.String()
}

// SearchLaptops runs a sanitized free-text search over the catalog.
// Blocked queries return an empty result, never an error.
func (s *Service) SearchLaptops(ctx context.Context, query string, limit int) ([]models.Laptop, error) {
	sanitized := Sanitize(query)
	if sanitized == "" {
		return nil, nil
	}
	if blocked, category, _ := IsQueryBlocked(sanitized); blocked {
		logging.Ctx(ctx).Warn().
			Str("category", category).
			Msg("Search query blocked by security filter")
		return nil, nil
	}

	var terms []string
	for _, tok := range searchTokenPattern.FindAllString(strings.ToLower(sanitized), -1) {
		if len([]rune(tok)) > 2 {
			terms = append(terms, tok)
		}
	}

	return s.store.Search(ctx, terms, limit)
}
