// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

// Package recommend implements the laptop scoring and ranking engine.
//
// The engine turns a use-case profile (gaming, design, dev, student,
// office) into hard candidate filters plus a weighted composite score
// over five catalog factors (CPU, RAM, GPU, price, storage). It is
// deliberately heuristic: descriptor fields are free text, so factors
// are computed by token matching, not by parsing hardware SKUs.
package recommend

import (
	"github.com/ngocvb/laptoplens/internal/models"
)

// Factor identifies one scoring dimension.
type Factor string

const (
	FactorCPU     Factor = "cpu"
	FactorRAM     Factor = "ram"
	FactorGPU     Factor = "gpu"
	FactorPrice   Factor = "price"
	FactorStorage Factor = "storage"
	// FactorScreen is carried by the design profile's weights but has no
	// scoring function yet. TODO: score panel resolution/refresh once the
	// screen descriptor gets a structured form.
	FactorScreen Factor = "screen"
)

// Priority adjusts the composite score after weighting.
type Priority string

const (
	PriorityPerformance Priority = "performance"
	PriorityBudget      Priority = "budget"
	PriorityBalanced    Priority = "balanced"
)

// UseCaseProfile binds a named use case to its hard candidate filters
// and factor weights.
type UseCaseProfile struct {
	// Name matches a models.Category value.
	Name models.Category `json:"name"`

	// MinRAMGB is the hard RAM floor for candidates.
	MinRAMGB int `json:"min_ram_gb"`

	// CPUSeries lists the CPU suffix tokens (uppercase) that earn the
	// full CPU factor for this use case.
	CPUSeries []string `json:"cpu_series"`

	// GPURequired excludes integrated-only and GPU-less records.
	GPURequired bool `json:"gpu_required"`

	// MinPrice is the hard price floor in VND. Cheaper records are
	// assumed too weak for the use case.
	MinPrice int64 `json:"min_price"`

	// Weights maps factors to their share of the composite score.
	// Factors absent from the map fall back to DefaultWeights.
	Weights map[Factor]float64 `json:"weights"`
}

// DefaultWeights supplies the weight for any factor a profile's map
// does not mention.
var DefaultWeights = map[Factor]float64{
	FactorCPU:     0.2,
	FactorRAM:     0.2,
	FactorGPU:     0.1,
	FactorPrice:   0.3,
	FactorStorage: 0.1,
}

// IntegratedGPUDenylist lists GPU descriptor substrings treated as
// integrated graphics when a profile requires a discrete GPU. Matching
// is case-sensitive substring containment.
var IntegratedGPUDenylist = []string{
	"Intel UHD",
	"AMD Radeon Graphics",
	"Intel Graphics",
}

// profiles holds the five built-in use-case profiles keyed by category.
var profiles = map[models.Category]UseCaseProfile{
	models.CategoryGaming: {
		Name:        models.CategoryGaming,
		MinRAMGB:    16,
		CPUSeries:   []string{"H", "HX", "HK"},
		GPURequired: true,
		MinPrice:    15_000_000,
		Weights: map[Factor]float64{
			FactorGPU:     0.3,
			FactorCPU:     0.25,
			FactorRAM:     0.2,
			FactorPrice:   0.15,
			FactorStorage: 0.1,
		},
	},
	models.CategoryDesign: {
		Name:        models.CategoryDesign,
		MinRAMGB:    16,
		CPUSeries:   []string{"H", "HX", "HK", "P"},
		GPURequired: true,
		MinPrice:    20_000_000,
		Weights: map[Factor]float64{
			FactorGPU:    0.25,
			FactorCPU:    0.25,
			FactorRAM:    0.2,
			FactorScreen: 0.2,
			FactorPrice:  0.1,
		},
	},
	models.CategoryDev: {
		Name:        models.CategoryDev,
		MinRAMGB:    16,
		CPUSeries:   []string{"H", "HX", "HK", "P", "U"},
		GPURequired: false,
		MinPrice:    12_000_000,
		Weights: map[Factor]float64{
			FactorCPU:     0.3,
			FactorRAM:     0.25,
			FactorStorage: 0.2,
			FactorPrice:   0.15,
			FactorGPU:     0.1,
		},
	},
	models.CategoryStudent: {
		Name:        models.CategoryStudent,
		MinRAMGB:    8,
		CPUSeries:   []string{"U", "P", "H"},
		GPURequired: false,
		MinPrice:    8_000_000,
		Weights: map[Factor]float64{
			FactorPrice:   0.4,
			FactorCPU:     0.25,
			FactorRAM:     0.2,
			FactorStorage: 0.15,
		},
	},
	models.CategoryOffice: {
		Name:        models.CategoryOffice,
		MinRAMGB:    8,
		CPUSeries:   []string{"U", "P"},
		GPURequired: false,
		MinPrice:    6_000_000,
		Weights: map[Factor]float64{
			FactorPrice:   0.5,
			FactorCPU:     0.2,
			FactorRAM:     0.2,
			FactorStorage: 0.1,
		},
	},
}

// ProfileFor returns the built-in profile for a category.
func ProfileFor(c models.Category) (UseCaseProfile, bool) {
	p, ok := profiles[c]
	return p, ok
}

// Profiles returns all built-in profiles in category display order.
func Profiles() []UseCaseProfile {
	out := make([]UseCaseProfile, 0, len(profiles))
	for _, c := range models.Categories {
		out = append(out, profiles[c])
	}
	return out
}

// Weight returns the profile's weight for a factor, falling back to
// DefaultWeights when the profile does not mention it.
func (p UseCaseProfile) Weight(f Factor) float64 {
	if w, ok := p.Weights[f]; ok {
		return w
	}
	return DefaultWeights[f]
}
