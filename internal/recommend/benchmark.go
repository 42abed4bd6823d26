// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package recommend

import "github.com/ngocvb/laptoplens/internal/models"

// BenchmarkMode selects which measurement set a benchmark figure is
// computed from. Laptops throttle on battery, so the two sets can
// differ a lot.
type BenchmarkMode string

const (
	BenchmarkPlugged BenchmarkMode = "plugged"
	BenchmarkBattery BenchmarkMode = "battery"
)

// IsValid reports whether m names a known measurement set.
func (m BenchmarkMode) IsValid() bool {
	return m == BenchmarkPlugged || m == BenchmarkBattery
}

// Benchmark component weights. Components missing their measurements
// drop out and the remaining weights are renormalized.
const (
	benchCPUWeight     = 0.4
	benchGPUWeight     = 0.3
	benchRAMWeight     = 0.2
	benchBatteryWeight = 0.1

	benchCPUSingleShare = 0.3
	benchCPUMultiShare  = 0.7
)

// benchmarkInputs picks the measurement set for a mode.
func benchmarkInputs(l models.Laptop, mode BenchmarkMode) (single, multi, gpu *int) {
	if mode == BenchmarkBattery {
		return l.CPUSingleCoreBattery, l.CPUMultiCoreBattery, l.GPUScoreBattery
	}
	return l.CPUSingleCorePlugged, l.CPUMultiCorePlugged, l.GPUScorePlugged
}

// BenchmarkScore condenses a laptop's measured benchmarks into one
// 0..100 figure for the given mode. CPU counts single-core at 30% and
// multi-core at 70%; GPU, RAM, and measured office battery life
// contribute the rest. The score is normalized over the components
// actually measured, so a record with no GPU benchmark is not
// penalized for it.
func BenchmarkScore(l models.Laptop, mode BenchmarkMode) float64 {
	single, multi, gpuScore := benchmarkInputs(l, mode)

	score := 0.0
	weight := 0.0

	if single != nil && multi != nil {
		cpu := (float64(*single)*benchCPUSingleShare +
			float64(*multi)*benchCPUMultiShare) / 100
		score += cpu * benchCPUWeight
		weight += benchCPUWeight
	}

	if gpuScore != nil {
		gpu := float64(*gpuScore) / 1000 * 10
		score += gpu * benchGPUWeight
		weight += benchGPUWeight
	}

	ram := float64(l.RAMGB) / 32 * 100
	if ram > 100 {
		ram = 100
	}
	score += ram * benchRAMWeight
	weight += benchRAMWeight

	if l.BatteryLifeOfficeMin != nil {
		battery := float64(*l.BatteryLifeOfficeMin) / 600 * 100
		if battery > 100 {
			battery = 100
		}
		score += battery * benchBatteryWeight
		weight += benchBatteryWeight
	}

	if weight == 0 {
		return 0
	}
	normalized := score / weight
	if normalized > 100 {
		return 100
	}
	return normalized
}

// BenchmarkMeasurements is the raw per-laptop chart data for one mode.
// Missing measurements render as zero, which the comparison chart
// shows as an empty bar.
type BenchmarkMeasurements struct {
	CPUSingleCore int `json:"cpu_single_core"`
	CPUMultiCore  int `json:"cpu_multi_core"`
	GPUScore      int `json:"gpu_score"`
}

// MeasurementsFor extracts the raw benchmark measurements for a mode.
func MeasurementsFor(l models.Laptop, mode BenchmarkMode) BenchmarkMeasurements {
	single, multi, gpu := benchmarkInputs(l, mode)
	return BenchmarkMeasurements{
		CPUSingleCore: orZero(single),
		CPUMultiCore:  orZero(multi),
		GPUScore:      orZero(gpu),
	}
}

func orZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
