// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

// Package catalog provides the laptop catalog store.
//
// The store owns LaptopRecord persistence and exposes the filter-by-attribute
// query capability the recommendation core consumes: brand equality, category
// equality, price range, RAM floor, and GPU-descriptor substring exclusion.
// The production implementation is DuckDB-backed; an in-memory implementation
// backs tests and demo seeding.
package catalog

import (
	"context"
	"errors"

	"github.com/ngocvb/laptoplens/internal/models"
)

// ErrNotFound is returned when a laptop ID does not exist in the catalog.
var ErrNotFound = errors.New("laptop not found")

// Filter describes one conjunctive catalog query. Zero/nil fields impose
// no constraint; all set fields must hold simultaneously (AND).
type Filter struct {
	// Brand filters by exact brand match.
	Brand string

	// Category filters by exact category match.
	Category models.Category

	// PriceMin / PriceMax bound the price range (inclusive), in VND.
	PriceMin *int64
	PriceMax *int64

	// RAMMin is the minimum installed memory in GB.
	RAMMin int

	// ExcludeGPUSubstr drops records whose GPU descriptor contains any of
	// these substrings (case-sensitive), and records with no GPU at all.
	// Used to exclude integrated graphics when a discrete GPU is required.
	ExcludeGPUSubstr []string

	// NameContains filters by substring on the model name (case-insensitive).
	NameContains string

	// OrderPriceAsc orders results by ascending price. When false the
	// store's natural (insertion) order is used.
	OrderPriceAsc bool

	// Limit caps the result count; 0 means no cap.
	Limit int

	// Offset skips the first N results (pagination).
	Offset int
}

// Store is the catalog query capability consumed by the recommendation
// core and the API layer. Implementations must be safe for concurrent use.
type Store interface {
	// Find returns all laptops matching the filter.
	// An empty result is valid, not an error.
	Find(ctx context.Context, f Filter) ([]models.Laptop, error)

	// Count returns the number of laptops matching the filter,
	// ignoring Limit/Offset.
	Count(ctx context.Context, f Filter) (int, error)

	// Get returns one laptop by ID, or ErrNotFound.
	Get(ctx context.Context, id int64) (models.Laptop, error)

	// GetMany returns the laptops with the given IDs, preserving the
	// requested order. Unknown IDs are skipped.
	GetMany(ctx context.Context, ids []int64) ([]models.Laptop, error)

	// Suggest returns up to limit laptops whose name or brand contains q
	// (case-insensitive), ordered by ascending price. Intended for
	// type-ahead search suggestions.
	Suggest(ctx context.Context, q string, limit int) ([]models.Laptop, error)

	// Search returns up to limit laptops matching any of the terms across
	// name, brand, category, CPU, GPU, and storage descriptors
	// (case-insensitive OR match), ordered by ascending price.
	Search(ctx context.Context, terms []string, limit int) ([]models.Laptop, error)

	// Insert adds a laptop and returns its assigned ID.
	Insert(ctx context.Context, l models.Laptop) (int64, error)

	// Close releases store resources.
	Close() error
}
