// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/ngocvb/laptoplens/internal/catalog"
	"github.com/ngocvb/laptoplens/internal/models"
)

func i64(v int64) *int64 { return &v }
func iptr(v int) *int    { return &v }

func testEngine(t *testing.T) *Engine {
	t.Helper()
	s := catalog.NewMemoryStore()
	if err := catalog.SeedIfEmpty(context.Background(), s); err != nil {
		t.Fatalf("SeedIfEmpty() error = %v", err)
	}
	return NewEngine(s)
}

func TestRecommendForUseCase_Gaming(t *testing.T) {
	e := testEngine(t)

	ranked, err := e.RecommendForUseCase(context.Background(), models.CategoryGaming, PriorityBalanced, nil)
	if err != nil {
		t.Fatalf("RecommendForUseCase() error = %v", err)
	}
	if len(ranked) == 0 {
		t.Fatal("no gaming recommendations from seeded catalog")
	}
	if len(ranked) > DefaultTopN {
		t.Errorf("got %d results, cap is %d", len(ranked), DefaultTopN)
	}

	for i, sc := range ranked {
		l := sc.Laptop
		if l.RAMGB < 16 {
			t.Errorf("%q violates 16GB RAM floor", l.Name)
		}
		if l.Price < 15_000_000 {
			t.Errorf("%q violates 15M price floor", l.Name)
		}
		if l.GPU == "" {
			t.Errorf("%q has no GPU but gaming requires one", l.Name)
		}
		for _, bad := range IntegratedGPUDenylist {
			if l.GPU == bad+" Graphics" || l.GPU == bad {
				t.Errorf("%q has integrated GPU %q", l.Name, l.GPU)
			}
		}
		if i > 0 && sc.Score > ranked[i-1].Score {
			t.Error("scores not descending")
		}
	}
}

func TestRecommendForUseCase_BudgetCap(t *testing.T) {
	e := testEngine(t)

	ranked, err := e.RecommendForUseCase(context.Background(), models.CategoryGaming, PriorityBudget, i64(30_000_000))
	if err != nil {
		t.Fatalf("RecommendForUseCase() error = %v", err)
	}
	for _, sc := range ranked {
		if sc.Laptop.Price > 30_000_000 {
			t.Errorf("%q exceeds 30M budget", sc.Laptop.Name)
		}
	}
}

func TestRecommendForUseCase_EmptyResultNotError(t *testing.T) {
	e := testEngine(t)

	// Nothing in the seeded catalog costs 1M VND or less.
	ranked, err := e.RecommendForUseCase(context.Background(), models.CategoryOffice, PriorityBalanced, i64(1_000_000))
	if err != nil {
		t.Fatalf("RecommendForUseCase() error = %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("got %d results under impossible budget, want 0", len(ranked))
	}
}

func TestRecommendForUseCase_BudgetReplacesPriceFloor(t *testing.T) {
	s := catalog.NewMemoryStore()
	ctx := context.Background()
	if _, err := s.Insert(ctx, models.Laptop{
		Name:     "Acer Nitro V 15",
		Brand:    "Acer",
		CPU:      "Intel Core i5-13420H",
		RAMGB:    16,
		GPU:      "NVIDIA GeForce GTX 1650",
		Storage:  "512GB SSD",
		Screen:   "15.6 inch FHD 144Hz",
		Price:    14_000_000,
		Category: models.CategoryGaming,
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	e := NewEngine(s)

	// 14M is below the gaming profile's 15M floor. With an explicit
	// budget the floor must step aside, not stack with the ceiling.
	ranked, err := e.RecommendForUseCase(ctx, models.CategoryGaming, PriorityBalanced, i64(14_000_000))
	if err != nil {
		t.Fatalf("RecommendForUseCase() error = %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("got %d results, want 1: explicit budget must replace the price floor", len(ranked))
	}
	if ranked[0].Laptop.Name != "Acer Nitro V 15" {
		t.Errorf("ranked %q, want the budget gaming laptop", ranked[0].Laptop.Name)
	}

	// Without a budget the floor still applies and excludes it.
	ranked, err = e.RecommendForUseCase(ctx, models.CategoryGaming, PriorityBalanced, nil)
	if err != nil {
		t.Fatalf("RecommendForUseCase() error = %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("got %d results without budget, want 0: price floor should hold", len(ranked))
	}
}

func TestRecommendForUseCase_UnknownUseCase(t *testing.T) {
	e := testEngine(t)

	_, err := e.RecommendForUseCase(context.Background(), models.Category("ultrabook"), PriorityBalanced, nil)
	if !errors.Is(err, ErrUnknownUseCase) {
		t.Errorf("error = %v, want ErrUnknownUseCase", err)
	}
}

func TestCandidatesByPreferences(t *testing.T) {
	e := testEngine(t)
	ctx := context.Background()

	prefs := models.PreferenceProfile{
		BudgetMax:   i64(35_000_000),
		Category:    models.CategoryGaming,
		RAMMin:      iptr(16),
		GPURequired: true,
	}

	got, err := e.CandidatesByPreferences(ctx, prefs, 15)
	if err != nil {
		t.Fatalf("CandidatesByPreferences() error = %v", err)
	}
	if len(got) == 0 {
		t.Fatal("no candidates for gaming preferences")
	}
	if len(got) > 15 {
		t.Errorf("limit not applied, got %d", len(got))
	}
	for i, l := range got {
		if l.Category != models.CategoryGaming || l.RAMGB < 16 || l.Price > 35_000_000 {
			t.Errorf("%q violates preference filter", l.Name)
		}
		if i > 0 && got[i].Price < got[i-1].Price {
			t.Error("candidates not price-ascending")
		}
	}
}

func TestCandidatesByPreferences_EmptyProfileReturnsCheapest(t *testing.T) {
	e := testEngine(t)

	got, err := e.CandidatesByPreferences(context.Background(), models.PreferenceProfile{}, 5)
	if err != nil {
		t.Fatalf("CandidatesByPreferences() error = %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d candidates, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Price < got[i-1].Price {
			t.Error("candidates not price-ascending")
		}
	}
}
