// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package recommend

import (
	"context"
	"fmt"

	"github.com/ngocvb/laptoplens/internal/catalog"
	"github.com/ngocvb/laptoplens/internal/logging"
	"github.com/ngocvb/laptoplens/internal/metrics"
	"github.com/ngocvb/laptoplens/internal/models"
)

// DefaultTopN is the result count for named use-case recommendations.
const DefaultTopN = 10

// ErrUnknownUseCase is returned for a use case with no built-in profile.
var ErrUnknownUseCase = fmt.Errorf("unknown use case")

// Engine binds the scoring core to a catalog store.
type Engine struct {
	store catalog.Store
}

// NewEngine returns an Engine backed by the given store.
func NewEngine(store catalog.Store) *Engine {
	return &Engine{store: store}
}

// CandidatesByUseCase fetches the laptops that pass a profile's hard
// filters: RAM floor, price bound, and (when required) discrete GPU.
// An explicit budget ceiling replaces the profile's price floor rather
// than stacking with it, so a buyer shopping below the floor still
// sees what the catalog has.
func (e *Engine) CandidatesByUseCase(ctx context.Context, p UseCaseProfile, budgetMax *int64) ([]models.Laptop, error) {
	f := catalog.Filter{
		RAMMin:   p.MinRAMGB,
		PriceMax: budgetMax,
	}
	if budgetMax == nil {
		minPrice := p.MinPrice
		f.PriceMin = &minPrice
	}
	if p.GPURequired {
		f.ExcludeGPUSubstr = IntegratedGPUDenylist
	}

	candidates, err := e.store.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates for %s: %w", p.Name, err)
	}
	metrics.RecommendCandidates.WithLabelValues(string(p.Name)).Observe(float64(len(candidates)))
	return candidates, nil
}

// RecommendForUseCase runs the full named-profile flow: hard filters,
// weighted scoring, priority adjustment, deterministic top-10 ranking.
// An empty result means nothing in the catalog passed the hard filters,
// not an error.
func (e *Engine) RecommendForUseCase(ctx context.Context, useCase models.Category, priority Priority, budgetMax *int64) ([]ScoredCandidate, error) {
	p, ok := ProfileFor(useCase)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUseCase, useCase)
	}
	metrics.RecommendRequestsTotal.WithLabelValues(string(useCase), string(priority)).Inc()

	candidates, err := e.CandidatesByUseCase(ctx, p, budgetMax)
	if err != nil {
		return nil, err
	}

	ranked := RankTopN(candidates, p, priority, DefaultTopN)
	logging.Ctx(ctx).Debug().
		Str("usecase", string(useCase)).
		Str("priority", string(priority)).
		Int("candidates", len(candidates)).
		Int("ranked", len(ranked)).
		Msg("Use-case recommendation computed")
	return ranked, nil
}

// CandidatesByPreferences fetches laptops matching an extracted
// preference profile, cheapest first, capped at limit. Used by the
// assistant pipeline to ground its prompt in real inventory.
func (e *Engine) CandidatesByPreferences(ctx context.Context, prefs models.PreferenceProfile, limit int) ([]models.Laptop, error) {
	f := catalog.Filter{
		Brand:         prefs.Brand,
		Category:      prefs.Category,
		PriceMin:      prefs.BudgetMin,
		PriceMax:      prefs.BudgetMax,
		OrderPriceAsc: true,
		Limit:         limit,
	}
	if prefs.RAMMin != nil {
		f.RAMMin = *prefs.RAMMin
	}
	if prefs.GPURequired {
		f.ExcludeGPUSubstr = IntegratedGPUDenylist
	}

	candidates, err := e.store.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preference candidates: %w", err)
	}
	return candidates, nil
}
