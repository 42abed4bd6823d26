// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/ngocvb/laptoplens/internal/models"
)

func i64(v int64) *int64 { return &v }

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	if err := SeedIfEmpty(context.Background(), s); err != nil {
		t.Fatalf("SeedIfEmpty() error = %v", err)
	}
	return s
}

func TestSeedIfEmpty_Idempotent(t *testing.T) {
	s := seededStore(t)
	want, _ := s.Count(context.Background(), Filter{})

	if err := SeedIfEmpty(context.Background(), s); err != nil {
		t.Fatalf("second SeedIfEmpty() error = %v", err)
	}
	got, _ := s.Count(context.Background(), Filter{})
	if got != want {
		t.Errorf("Count after reseed = %d, want %d", got, want)
	}
}

func TestFind_Filters(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter Filter
		check  func(t *testing.T, got []models.Laptop)
	}{
		{
			name:   "brand equality",
			filter: Filter{Brand: "Dell"},
			check: func(t *testing.T, got []models.Laptop) {
				if len(got) == 0 {
					t.Fatal("no Dell laptops found")
				}
				for _, l := range got {
					if l.Brand != "Dell" {
						t.Errorf("got brand %q, want Dell", l.Brand)
					}
				}
			},
		},
		{
			name:   "category equality",
			filter: Filter{Category: models.CategoryGaming},
			check: func(t *testing.T, got []models.Laptop) {
				for _, l := range got {
					if l.Category != models.CategoryGaming {
						t.Errorf("got category %q, want gaming", l.Category)
					}
				}
			},
		},
		{
			name:   "price range inclusive",
			filter: Filter{PriceMin: i64(10_000_000), PriceMax: i64(20_000_000)},
			check: func(t *testing.T, got []models.Laptop) {
				for _, l := range got {
					if l.Price < 10_000_000 || l.Price > 20_000_000 {
						t.Errorf("price %d outside [10M, 20M]", l.Price)
					}
				}
			},
		},
		{
			name:   "ram floor",
			filter: Filter{RAMMin: 16},
			check: func(t *testing.T, got []models.Laptop) {
				for _, l := range got {
					if l.RAMGB < 16 {
						t.Errorf("RAM %d below floor 16", l.RAMGB)
					}
				}
			},
		},
		{
			name: "gpu exclusion drops integrated and missing",
			filter: Filter{
				ExcludeGPUSubstr: []string{"Intel UHD", "AMD Radeon Graphics", "Intel Graphics"},
			},
			check: func(t *testing.T, got []models.Laptop) {
				for _, l := range got {
					if l.GPU == "" {
						t.Errorf("laptop %q has no GPU but survived exclusion", l.Name)
					}
					if l.GPU == "Intel UHD Graphics" || l.GPU == "AMD Radeon Graphics" {
						t.Errorf("integrated GPU %q survived exclusion", l.GPU)
					}
				}
			},
		},
		{
			name:   "conjunction of constraints",
			filter: Filter{Category: models.CategoryGaming, RAMMin: 16, PriceMax: i64(30_000_000)},
			check: func(t *testing.T, got []models.Laptop) {
				for _, l := range got {
					if l.Category != models.CategoryGaming || l.RAMGB < 16 || l.Price > 30_000_000 {
						t.Errorf("laptop %q violates conjunctive filter", l.Name)
					}
				}
			},
		},
		{
			name:   "no match is empty not error",
			filter: Filter{Brand: "Framework"},
			check: func(t *testing.T, got []models.Laptop) {
				if len(got) != 0 {
					t.Errorf("got %d laptops, want 0", len(got))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Find(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestFind_OrderAndPagination(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	all, err := s.Find(ctx, Filter{OrderPriceAsc: true})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	for i := 1; i < len(all); i++ {
		if all[i].Price < all[i-1].Price {
			t.Fatalf("results not price-ascending at index %d", i)
		}
	}

	page, err := s.Find(ctx, Filter{OrderPriceAsc: true, Limit: 3, Offset: 2})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("page size = %d, want 3", len(page))
	}
	for i, l := range page {
		if l.ID != all[i+2].ID {
			t.Errorf("page[%d].ID = %d, want %d", i, l.ID, all[i+2].ID)
		}
	}
}

func TestGet(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	l, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get(1) error = %v", err)
	}
	if l.ID != 1 {
		t.Errorf("ID = %d, want 1", l.ID)
	}

	_, err = s.Get(ctx, 99999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(99999) error = %v, want ErrNotFound", err)
	}
}

func TestGetMany_PreservesOrderSkipsUnknown(t *testing.T) {
	s := seededStore(t)

	got, err := s.GetMany(context.Background(), []int64{3, 99999, 1})
	if err != nil {
		t.Fatalf("GetMany() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Errorf("order = [%d, %d], want [3, 1]", got[0].ID, got[1].ID)
	}
}

func TestSuggest(t *testing.T) {
	s := seededStore(t)

	got, err := s.Suggest(context.Background(), "asus", 10)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(got) == 0 {
		t.Fatal("no suggestions for asus")
	}
	for i, l := range got {
		if l.Brand != "Asus" {
			t.Errorf("suggestion %q is not an Asus", l.Name)
		}
		if i > 0 && got[i].Price < got[i-1].Price {
			t.Error("suggestions not price-ascending")
		}
	}
}

func TestSearch_MatchesAcrossFields(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	byGPU, err := s.Search(ctx, []string{"rtx"}, 20)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(byGPU) == 0 {
		t.Fatal("search for rtx matched nothing")
	}

	byCPU, err := s.Search(ctx, []string{"ryzen"}, 20)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(byCPU) == 0 {
		t.Fatal("search for ryzen matched nothing")
	}

	limited, err := s.Search(ctx, []string{"laptop", "intel"}, 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(limited) > 2 {
		t.Errorf("limit not applied, got %d", len(limited))
	}
}
