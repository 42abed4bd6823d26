// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

// Package session persists per-conversation chat history in BadgerDB.
//
// Histories are bounded FIFO: each append trims the transcript to the
// configured maximum, oldest messages first, so a long-running session
// can never grow without bound. Sessions expire via Badger TTL.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ngocvb/laptoplens/internal/config"
	"github.com/ngocvb/laptoplens/internal/logging"
	"github.com/ngocvb/laptoplens/internal/models"
)

// historyKeyPrefix namespaces chat-history keys in BadgerDB.
const historyKeyPrefix = "history:"

// sessionTTL is how long an idle session's history is retained.
const sessionTTL = 24 * time.Hour

// Store persists bounded conversation histories.
type Store struct {
	db          *badger.DB
	maxMessages int
}

// NewSessionID returns a fresh opaque session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// New opens (or creates) the session database per config. With
// cfg.InMemory set, nothing touches disk and all history is lost on
// shutdown, which is what tests and demo setups want.
func New(cfg *config.SessionConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	logging.Info().
		Bool("in_memory", cfg.InMemory).
		Int("max_messages", cfg.MaxMessages).
		Msg("Session store initialized")

	return &Store{db: db, maxMessages: cfg.MaxMessages}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// History returns the session's transcript, oldest first. An unknown
// or expired session yields an empty history, not an error.
func (s *Store) History(sessionID string) ([]models.ChatMessage, error) {
	var history []models.ChatMessage

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(historyKeyPrefix + sessionID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get history: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &history)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return history, nil
}

// Append adds messages to the session's transcript, trimming the
// oldest entries beyond the configured maximum, and refreshes the
// session TTL.
func (s *Store) Append(sessionID string, messages ...models.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	key := []byte(historyKeyPrefix + sessionID)
	return s.db.Update(func(txn *badger.Txn) error {
		var history []models.ChatMessage

		item, err := txn.Get(key)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			// New session.
		case err != nil:
			return fmt.Errorf("get history: %w", err)
		default:
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &history)
			}); err != nil {
				return fmt.Errorf("decode history: %w", err)
			}
		}

		history = append(history, messages...)
		if s.maxMessages > 0 && len(history) > s.maxMessages {
			history = history[len(history)-s.maxMessages:]
		}

		data, err := json.Marshal(history)
		if err != nil {
			return fmt.Errorf("encode history: %w", err)
		}
		entry := badger.NewEntry(key, data).WithTTL(sessionTTL)
		return txn.SetEntry(entry)
	})
}

// Clear removes a session's transcript. Clearing an unknown session
// is a no-op.
func (s *Store) Clear(sessionID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(historyKeyPrefix + sessionID))
	})
}
