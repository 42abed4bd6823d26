// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package session

import (
	"fmt"
	"testing"

	"github.com/ngocvb/laptoplens/internal/config"
	"github.com/ngocvb/laptoplens/internal/models"
)

func newTestStore(t *testing.T, maxMessages int) *Store {
	t.Helper()
	s, err := New(&config.SessionConfig{InMemory: true, MaxMessages: maxMessages})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

func TestHistory_UnknownSessionIsEmpty(t *testing.T) {
	s := newTestStore(t, 10)

	history, err := s.History("no-such-session")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history = %d messages, want 0", len(history))
	}
}

func TestAppendAndHistory(t *testing.T) {
	s := newTestStore(t, 10)
	id := NewSessionID()

	err := s.Append(id,
		models.ChatMessage{Role: "user", Content: "tư vấn laptop"},
		models.ChatMessage{Role: "assistant", Content: "Bạn cần laptop cho nhu cầu gì?"},
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	history, err := s.History(id)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d messages, want 2", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Error("history order not preserved")
	}
	if history[0].Content != "tư vấn laptop" {
		t.Errorf("content = %q", history[0].Content)
	}
}

func TestAppend_TrimsOldestBeyondCap(t *testing.T) {
	s := newTestStore(t, 4)
	id := NewSessionID()

	for i := 0; i < 7; i++ {
		err := s.Append(id, models.ChatMessage{Role: "user", Content: fmt.Sprintf("msg-%d", i)})
		if err != nil {
			t.Fatalf("Append(%d) error = %v", i, err)
		}
	}

	history, err := s.History(id)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("history = %d messages, want 4", len(history))
	}
	// Oldest three were trimmed, so the window starts at msg-3.
	for i, msg := range history {
		want := fmt.Sprintf("msg-%d", i+3)
		if msg.Content != want {
			t.Errorf("history[%d] = %q, want %q", i, msg.Content, want)
		}
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestStore(t, 10)
	a, b := NewSessionID(), NewSessionID()

	if err := s.Append(a, models.ChatMessage{Role: "user", Content: "from a"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := s.Append(b, models.ChatMessage{Role: "user", Content: "from b"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	historyA, _ := s.History(a)
	historyB, _ := s.History(b)
	if len(historyA) != 1 || len(historyB) != 1 {
		t.Fatal("session histories leaked across IDs")
	}
	if historyA[0].Content != "from a" || historyB[0].Content != "from b" {
		t.Error("wrong content per session")
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t, 10)
	id := NewSessionID()

	if err := s.Append(id, models.ChatMessage{Role: "user", Content: "x"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := s.Clear(id); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	history, err := s.History(id)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history = %d messages after Clear, want 0", len(history))
	}

	// Clearing again is a no-op.
	if err := s.Clear(id); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}
