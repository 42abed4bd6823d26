// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ngocvb/laptoplens/internal/models"
)

// MemoryStore is an in-memory Store used by tests and demo setups. It
// implements the same filter semantics as the DuckDB store.
type MemoryStore struct {
	mu      sync.RWMutex
	laptops []models.Laptop
	nextID  int64
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func matchesFilter(l models.Laptop, f Filter) bool {
	if f.Brand != "" && l.Brand != f.Brand {
		return false
	}
	if f.Category != "" && l.Category != f.Category {
		return false
	}
	if f.PriceMin != nil && l.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && l.Price > *f.PriceMax {
		return false
	}
	if f.RAMMin > 0 && l.RAMGB < f.RAMMin {
		return false
	}
	if len(f.ExcludeGPUSubstr) > 0 {
		if l.GPU == "" {
			return false
		}
		for _, sub := range f.ExcludeGPUSubstr {
			if strings.Contains(l.GPU, sub) {
				return false
			}
		}
	}
	if f.NameContains != "" &&
		!strings.Contains(strings.ToLower(l.Name), strings.ToLower(f.NameContains)) {
		return false
	}
	return true
}

// Find returns all laptops matching the filter.
func (m *MemoryStore) Find(_ context.Context, f Filter) ([]models.Laptop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []models.Laptop
	for _, l := range m.laptops {
		if matchesFilter(l, f) {
			result = append(result, l)
		}
	}
	if f.OrderPriceAsc {
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].Price != result[j].Price {
				return result[i].Price < result[j].Price
			}
			return result[i].ID < result[j].ID
		})
	}
	if f.Offset > 0 {
		if f.Offset >= len(result) {
			return nil, nil
		}
		result = result[f.Offset:]
	}
	if f.Limit > 0 && len(result) > f.Limit {
		result = result[:f.Limit]
	}
	return result, nil
}

// Count returns the number of laptops matching the filter.
func (m *MemoryStore) Count(_ context.Context, f Filter) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, l := range m.laptops {
		if matchesFilter(l, f) {
			n++
		}
	}
	return n, nil
}

// Get returns one laptop by ID, or ErrNotFound.
func (m *MemoryStore) Get(_ context.Context, id int64) (models.Laptop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, l := range m.laptops {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Laptop{}, ErrNotFound
}

// GetMany returns the laptops with the given IDs in request order.
func (m *MemoryStore) GetMany(_ context.Context, ids []int64) ([]models.Laptop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byID := make(map[int64]models.Laptop, len(m.laptops))
	for _, l := range m.laptops {
		byID[l.ID] = l
	}
	var result []models.Laptop
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			result = append(result, l)
		}
	}
	return result, nil
}

// Suggest returns type-ahead suggestions over name and brand.
func (m *MemoryStore) Suggest(_ context.Context, q string, limit int) ([]models.Laptop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q = strings.ToLower(q)
	var result []models.Laptop
	for _, l := range m.laptops {
		if strings.Contains(strings.ToLower(l.Name), q) ||
			strings.Contains(strings.ToLower(l.Brand), q) {
			result = append(result, l)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Price != result[j].Price {
			return result[i].Price < result[j].Price
		}
		return result[i].ID < result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Search returns laptops matching any term across descriptor fields.
func (m *MemoryStore) Search(_ context.Context, terms []string, limit int) ([]models.Laptop, error) {
	if len(terms) == 0 {
		return m.Find(context.Background(), Filter{OrderPriceAsc: true, Limit: limit})
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []models.Laptop
	for _, l := range m.laptops {
		haystacks := []string{l.Name, l.Brand, string(l.Category), l.CPU, l.GPU, l.Storage}
		matched := false
		for _, term := range terms {
			term = strings.ToLower(term)
			for _, h := range haystacks {
				if strings.Contains(strings.ToLower(h), term) {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if matched {
			result = append(result, l)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Price != result[j].Price {
			return result[i].Price < result[j].Price
		}
		return result[i].ID < result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Insert adds a laptop and returns its assigned ID. A zero ID is
// auto-assigned; a non-zero ID is kept as given.
func (m *MemoryStore) Insert(_ context.Context, l models.Laptop) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l.ID == 0 {
		l.ID = m.nextID
	}
	if l.ID >= m.nextID {
		m.nextID = l.ID + 1
	}
	m.laptops = append(m.laptops, l)
	return l.ID, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }
