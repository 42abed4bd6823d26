// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package recommend

import (
	"sort"
	"strings"

	"github.com/ngocvb/laptoplens/internal/models"
)

// priceCeiling is the price at which the price factor bottoms out at 0.
const priceCeiling = 50_000_000

// ramCeiling is the RAM amount (GB) that earns the full RAM factor.
const ramCeiling = 32.0

// scoringFactors lists the factors that have a scoring function, in
// breakdown display order.
var scoringFactors = []Factor{FactorCPU, FactorRAM, FactorGPU, FactorPrice, FactorStorage}

// ScoredCandidate pairs a laptop with its composite score and the
// per-factor breakdown that produced it.
type ScoredCandidate struct {
	Laptop models.Laptop `json:"laptop"`

	// Score is the priority-adjusted composite in [0, 1.2].
	Score float64 `json:"score"`

	// Breakdown holds the raw (unweighted) factor values in [0, 1].
	Breakdown map[Factor]float64 `json:"breakdown"`
}

// cpuFactor scores the CPU descriptor against the profile's preferred
// series suffixes. Matching is uppercase substring containment: a
// series match earns 1.0, any U-series (efficiency) CPU earns 0.5,
// anything else 0.
func cpuFactor(cpu string, series []string) float64 {
	upper := strings.ToUpper(cpu)
	for _, s := range series {
		if strings.Contains(upper, s) {
			return 1.0
		}
	}
	if strings.Contains(upper, "U") {
		return 0.5
	}
	return 0
}

// ramFactor scales installed memory linearly, saturating at 32 GB.
func ramFactor(ramGB int) float64 {
	f := float64(ramGB) / ramCeiling
	if f > 1.0 {
		return 1.0
	}
	return f
}

// gpuFactor buckets the GPU descriptor: discrete gaming GPUs earn 1.0,
// entry-level discrete and Iris Xe earn 0.6, other descriptors 0.3,
// no GPU at all 0.
func gpuFactor(gpu string) float64 {
	if gpu == "" {
		return 0
	}
	lower := strings.ToLower(gpu)
	for _, kw := range []string{"rtx", "gtx", "rx", "radeon"} {
		if strings.Contains(lower, kw) {
			return 1.0
		}
	}
	if strings.Contains(lower, "mx") || strings.Contains(lower, "iris xe") {
		return 0.6
	}
	return 0.3
}

// priceFactor rewards cheaper machines linearly, reaching 0 at the
// 50M VND ceiling.
func priceFactor(price int64) float64 {
	f := 1.0 - float64(price)/priceCeiling
	if f < 0 {
		return 0
	}
	return f
}

// storageFactor prefers SSDs over spinning disks; unrecognized
// descriptors score a neutral 0.5.
func storageFactor(storage string) float64 {
	lower := strings.ToLower(storage)
	switch {
	case strings.Contains(lower, "ssd"):
		return 1.0
	case strings.Contains(lower, "hdd"):
		return 0.3
	default:
		return 0.5
	}
}

// factorValue computes one raw factor for a laptop under a profile.
func factorValue(f Factor, l models.Laptop, p UseCaseProfile) float64 {
	switch f {
	case FactorCPU:
		return cpuFactor(l.CPU, p.CPUSeries)
	case FactorRAM:
		return ramFactor(l.RAMGB)
	case FactorGPU:
		return gpuFactor(l.GPU)
	case FactorPrice:
		return priceFactor(l.Price)
	case FactorStorage:
		return storageFactor(l.Storage)
	default:
		return 0
	}
}

// priorityModifier returns the multiplicative composite adjustment for
// a priority. Unknown priorities behave as balanced.
func priorityModifier(p Priority) float64 {
	switch p {
	case PriorityPerformance:
		return 1.2
	case PriorityBudget:
		return 0.8
	default:
		return 1.0
	}
}

// ScoreForUseCase computes the priority-adjusted composite score of one
// laptop under a use-case profile, with its factor breakdown.
func ScoreForUseCase(l models.Laptop, p UseCaseProfile, priority Priority) (float64, map[Factor]float64) {
	breakdown := make(map[Factor]float64, len(scoringFactors))
	total := 0.0
	for _, f := range scoringFactors {
		v := factorValue(f, l, p)
		breakdown[f] = v
		total += v * p.Weight(f)
	}
	return total * priorityModifier(priority), breakdown
}

// RankTopN scores all candidates under the profile and returns the top
// n by descending score. Ties break deterministically: lower price
// first, then lower ID, so identical inputs always rank identically.
func RankTopN(candidates []models.Laptop, p UseCaseProfile, priority Priority, n int) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, l := range candidates {
		score, breakdown := ScoreForUseCase(l, p, priority)
		scored = append(scored, ScoredCandidate{Laptop: l, Score: score, Breakdown: breakdown})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Laptop.Price != scored[j].Laptop.Price {
			return scored[i].Laptop.Price < scored[j].Laptop.Price
		}
		return scored[i].Laptop.ID < scored[j].Laptop.ID
	})

	if n > 0 && len(scored) > n {
		scored = scored[:n]
	}
	return scored
}
