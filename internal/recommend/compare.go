// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package recommend

import (
	"strings"

	"github.com/ngocvb/laptoplens/internal/models"
)

// Comparison is the result of a side-by-side comparison: each entry's
// coarse performance points plus the three verdict picks.
type Comparison struct {
	Entries []ComparisonEntry `json:"entries"`

	// BestPerformance is the laptop with the highest point total.
	BestPerformance models.Laptop `json:"best_performance"`

	// Cheapest is the laptop with the lowest price.
	Cheapest models.Laptop `json:"cheapest"`

	// BestValue minimizes price per performance point.
	BestValue models.Laptop `json:"best_value"`
}

// ComparisonEntry pairs a laptop with its comparison point total.
type ComparisonEntry struct {
	Laptop models.Laptop `json:"laptop"`
	Points int           `json:"points"`
}

// PerformancePoints computes the coarse point total used by the
// comparison flow. This is a separate, bucketed scale from the
// use-case composite score: it buckets specs into point tiers so the
// verdict reads naturally next to a spec table.
func PerformancePoints(l models.Laptop) int {
	points := 0

	cpu := strings.ToUpper(l.CPU)
	switch {
	case strings.Contains(cpu, "H") || strings.Contains(cpu, "HX") || strings.Contains(cpu, "HK"):
		points += 30
	case strings.Contains(cpu, "P"):
		points += 20
	default:
		points += 10
	}

	switch {
	case l.RAMGB >= 16:
		points += 25
	case l.RAMGB >= 8:
		points += 15
	default:
		points += 5
	}

	gpu := strings.ToLower(l.GPU)
	switch {
	case strings.Contains(gpu, "rtx") || strings.Contains(gpu, "gtx"):
		points += 30
	case strings.Contains(gpu, "mx") || strings.Contains(gpu, "iris"):
		points += 15
	}

	if strings.Contains(strings.ToLower(l.Storage), "ssd") {
		points += 15
	}

	return points
}

// Compare scores the given laptops and picks the best performer, the
// cheapest, and the best price-per-point value. Ties resolve to the
// earlier laptop in input order. At least one laptop is required; the
// caller enforces the 2..n arity of the API.
func Compare(laptops []models.Laptop) Comparison {
	entries := make([]ComparisonEntry, len(laptops))
	for i, l := range laptops {
		entries[i] = ComparisonEntry{Laptop: l, Points: PerformancePoints(l)}
	}

	best, cheapest, value := 0, 0, 0
	for i := 1; i < len(entries); i++ {
		if entries[i].Points > entries[best].Points {
			best = i
		}
		if entries[i].Laptop.Price < entries[cheapest].Laptop.Price {
			cheapest = i
		}
		if ratio(entries[i]) < ratio(entries[value]) {
			value = i
		}
	}

	return Comparison{
		Entries:         entries,
		BestPerformance: entries[best].Laptop,
		Cheapest:        entries[cheapest].Laptop,
		BestValue:       entries[value].Laptop,
	}
}

// ratio is price per performance point. The +1 keeps a zero-point
// entry from dividing by zero.
func ratio(e ComparisonEntry) float64 {
	return float64(e.Laptop.Price) / float64(e.Points+1)
}
