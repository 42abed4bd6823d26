// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package models

import (
	"fmt"
	"strings"
)

// PriceTier buckets a VND price into a marketing tier.
func PriceTier(price int64) string {
	switch {
	case price < 10_000_000:
		return "budget"
	case price < 20_000_000:
		return "mid-range"
	case price < 35_000_000:
		return "premium"
	default:
		return "flagship"
	}
}

// RAMTier buckets installed memory into a capability tier.
func RAMTier(ramGB int) string {
	switch {
	case ramGB <= 4:
		return "basic"
	case ramGB <= 8:
		return "standard"
	case ramGB <= 16:
		return "good"
	default:
		return "excellent"
	}
}

// BatteryTier buckets office-workload runtime (minutes) into a tier.
// Returns "unknown" when the runtime was never measured.
func BatteryTier(runtimeMin *int) string {
	if runtimeMin == nil || *runtimeMin == 0 {
		return "unknown"
	}
	switch {
	case *runtimeMin < 300: // under 5 hours
		return "poor"
	case *runtimeMin < 480: // under 8 hours
		return "average"
	case *runtimeMin < 720: // under 12 hours
		return "good"
	default:
		return "excellent"
	}
}

// FormatPrice renders a VND price with Vietnamese thousands separators,
// e.g. 15000000 -> "15.000.000 VND". Zero is rendered as "Liên hệ"
// (price on request), matching the storefront convention.
func FormatPrice(price int64) string {
	if price <= 0 {
		return "Liên hệ"
	}
	s := fmt.Sprintf("%d", price)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String() + " VND"
}
