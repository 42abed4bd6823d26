// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package models

// Category classifies a laptop by its intended buyer persona.
// The category set doubles as the set of named use-case profiles
// understood by the recommendation engine.
type Category string

const (
	// CategoryGaming targets discrete-GPU gaming machines.
	CategoryGaming Category = "gaming"
	// CategoryDesign targets graphic design and content creation.
	CategoryDesign Category = "design"
	// CategoryDev targets software development workloads.
	CategoryDev Category = "dev"
	// CategoryStudent targets general student use.
	CategoryStudent Category = "student"
	// CategoryOffice targets office productivity work.
	CategoryOffice Category = "office"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryGaming,
	CategoryDesign,
	CategoryDev,
	CategoryStudent,
	CategoryOffice,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGaming, CategoryDesign, CategoryDev, CategoryStudent, CategoryOffice:
		return true
	default:
		return false
	}
}

// Laptop is an immutable-per-request view of one catalog entry.
//
// Prices are integer VND (smallest currency unit, no fractional part).
// Descriptor fields (CPU, GPU, Storage, Screen) are free text as entered
// by catalog administrators; the scoring engine matches tokens inside
// them rather than parsing structure. An empty GPU means the record has
// no GPU descriptor at all.
//
// Benchmark and battery fields are optional: nil means the measurement
// was never captured for this model.
type Laptop struct {
	// ID is the unique catalog identifier.
	ID int64 `json:"id"`

	// Name is the full model name shown to users.
	Name string `json:"name"`

	// Brand is the manufacturer name (e.g. "Asus", "Dell").
	Brand string `json:"brand"`

	// CPU is the free-text CPU descriptor (e.g. "Intel Core i7-13700H").
	CPU string `json:"cpu"`

	// RAMGB is the installed memory in gigabytes.
	RAMGB int `json:"ram_gb"`

	// GPU is the free-text GPU descriptor; empty when none is recorded.
	GPU string `json:"gpu,omitempty"`

	// Storage is the free-text storage descriptor (e.g. "512GB SSD").
	Storage string `json:"storage"`

	// Screen is the free-text screen descriptor (e.g. "15.6 inch FHD 144Hz").
	Screen string `json:"screen"`

	// Price is the list price in VND.
	Price int64 `json:"price"`

	// Category is the buyer persona this model is catalogued under.
	Category Category `json:"category"`

	// ImageURL is the product image path; empty when none uploaded.
	ImageURL string `json:"image_url,omitempty"`

	// BatteryCapacityWh is the battery capacity in watt-hours.
	BatteryCapacityWh *int `json:"battery_capacity,omitempty"`

	// BatteryLifeOfficeMin is measured office-workload runtime in minutes.
	BatteryLifeOfficeMin *int `json:"battery_life_office,omitempty"`

	// BatteryLifeGamingMin is measured gaming-workload runtime in minutes.
	BatteryLifeGamingMin *int `json:"battery_life_gaming,omitempty"`

	// Geekbench 6 CPU scores, plugged in and on battery.
	CPUSingleCorePlugged *int `json:"cpu_single_core_plugged,omitempty"`
	CPUMultiCorePlugged  *int `json:"cpu_multi_core_plugged,omitempty"`
	CPUSingleCoreBattery *int `json:"cpu_single_core_battery,omitempty"`
	CPUMultiCoreBattery  *int `json:"cpu_multi_core_battery,omitempty"`

	// 3DMark/Geekbench GPU scores, plugged in and on battery.
	GPUScorePlugged *int `json:"gpu_score_plugged,omitempty"`
	GPUScoreBattery *int `json:"gpu_score_battery,omitempty"`
}

// PreferenceProfile is the structured filter derived from free-text user
// input by the preference extractor. It is created fresh per request and
// never persisted; nil/zero fields impose no constraint.
//
// Once a field has been set by a matching pattern, later lower-priority
// patterns within the same extraction must not overwrite it
// (first-match-wins per field).
type PreferenceProfile struct {
	// BudgetMin is the minimum acceptable price in VND, nil if unset.
	BudgetMin *int64 `json:"budget_min"`

	// BudgetMax is the maximum acceptable price in VND, nil if unset.
	BudgetMax *int64 `json:"budget_max"`

	// Category is the detected buyer persona, empty if none detected.
	Category Category `json:"category,omitempty"`

	// Brand is the detected brand preference (title-cased), empty if none.
	Brand string `json:"brand,omitempty"`

	// RAMMin is the minimum memory requirement in GB, nil if unset.
	RAMMin *int `json:"ram_min"`

	// GPURequired indicates the user needs a discrete GPU.
	GPURequired bool `json:"gpu_required"`
}

// IsEmpty reports whether no preference signal was extracted at all.
func (p PreferenceProfile) IsEmpty() bool {
	return p.BudgetMin == nil && p.BudgetMax == nil && p.Category == "" &&
		p.Brand == "" && p.RAMMin == nil && !p.GPURequired
}

// ChatMessage is one turn of a conversation with the assistant.
type ChatMessage struct {
	// Role is "user" or "assistant".
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}
