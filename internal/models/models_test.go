// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package models

import (
	"testing"
	"time"
)

func TestCategory_IsValid(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryGaming, true},
		{CategoryDesign, true},
		{CategoryDev, true},
		{CategoryStudent, true},
		{CategoryOffice, true},
		{Category(""), false},
		{Category("ultrabook"), false},
		{Category("Gaming"), false}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.IsValid(); got != tt.want {
				t.Errorf("Category(%q).IsValid() = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestCategories_CoversAllValid(t *testing.T) {
	if len(Categories) != 5 {
		t.Fatalf("len(Categories) = %d, want 5", len(Categories))
	}
	for _, c := range Categories {
		if !c.IsValid() {
			t.Errorf("Categories contains invalid entry %q", c)
		}
	}
}

func TestPreferenceProfile_IsEmpty(t *testing.T) {
	budget := int64(20_000_000)
	ram := 16

	tests := []struct {
		name  string
		prefs PreferenceProfile
		want  bool
	}{
		{"zero value", PreferenceProfile{}, true},
		{"budget max set", PreferenceProfile{BudgetMax: &budget}, false},
		{"budget min set", PreferenceProfile{BudgetMin: &budget}, false},
		{"category set", PreferenceProfile{Category: CategoryGaming}, false},
		{"brand set", PreferenceProfile{Brand: "Asus"}, false},
		{"ram set", PreferenceProfile{RAMMin: &ram}, false},
		{"gpu required", PreferenceProfile{GPURequired: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prefs.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriceTier(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{5_000_000, "budget"},
		{9_999_999, "budget"},
		{10_000_000, "mid-range"},
		{19_999_999, "mid-range"},
		{20_000_000, "premium"},
		{34_999_999, "premium"},
		{35_000_000, "flagship"},
		{80_000_000, "flagship"},
	}

	for _, tt := range tests {
		if got := PriceTier(tt.price); got != tt.want {
			t.Errorf("PriceTier(%d) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestRAMTier(t *testing.T) {
	tests := []struct {
		ram  int
		want string
	}{
		{4, "basic"},
		{8, "standard"},
		{16, "good"},
		{32, "excellent"},
	}

	for _, tt := range tests {
		if got := RAMTier(tt.ram); got != tt.want {
			t.Errorf("RAMTier(%d) = %q, want %q", tt.ram, got, tt.want)
		}
	}
}

func TestBatteryTier(t *testing.T) {
	minutes := func(m int) *int { return &m }

	tests := []struct {
		name    string
		runtime *int
		want    string
	}{
		{"nil", nil, "unknown"},
		{"zero", minutes(0), "unknown"},
		{"poor", minutes(250), "poor"},
		{"average", minutes(400), "average"},
		{"good", minutes(600), "good"},
		{"excellent", minutes(800), "excellent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BatteryTier(tt.runtime); got != tt.want {
				t.Errorf("BatteryTier = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{15_000_000, "15.000.000 VND"},
		{999, "999 VND"},
		{1_500, "1.500 VND"},
		{0, "Liên hệ"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse(map[string]int{"total": 3}, 45*time.Millisecond)

	if resp.Status != "success" {
		t.Errorf("Status = %q, want success", resp.Status)
	}
	if resp.Error != nil {
		t.Errorf("Error = %v, want nil", resp.Error)
	}
	if resp.Metadata.QueryTimeMS != 45 {
		t.Errorf("QueryTimeMS = %d, want 45", resp.Metadata.QueryTimeMS)
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("VALIDATION_ERROR", "bad input", map[string]interface{}{"field": "need"})

	if resp.Status != "error" {
		t.Errorf("Status = %q, want error", resp.Status)
	}
	if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Error = %+v, want code VALIDATION_ERROR", resp.Error)
	}
}
