// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package assistant

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ngocvb/laptoplens/internal/models"
)

// budgetPattern pairs one budget regex with its amount scale. Every
// pattern captures an optional dưới/trên qualifier in group 1 and the
// amount in group 2, so a below/above marker anywhere inside the
// matched phrase is honored.
type budgetPattern struct {
	re    *regexp.Regexp
	scale int64
}

// budgetPatterns are tried in order; the first match wins and later
// patterns never overwrite it.
var budgetPatterns = []budgetPattern{
	{regexp.MustCompile(`(?:(dưới|trên)\s*)?(\d+)\s*(?:triệu|tr|million)`), 1_000_000},
	{regexp.MustCompile(`(?:(dưới|trên)\s*)?(\d+)\s*(?:nghìn|k)`), 1_000},
	{regexp.MustCompile(`giá(?:\D*?(dưới|trên))?\D*?(\d+)`), 1},
	{regexp.MustCompile(`(dưới)\D*?(\d+)`), 1},
	{regexp.MustCompile(`(trên)\D*?(\d+)`), 1},
}

// categoryKeyword lists, checked in category display order; the first
// category with a matching keyword wins.
var categoryKeywords = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryGaming, []string{"gaming", "game", "chơi game", "rtx", "gtx", "gpu mạnh"}},
	{models.CategoryDesign, []string{"design", "thiết kế", "đồ họa", "photoshop", "illustrator", "premiere"}},
	{models.CategoryDev, []string{"lập trình", "dev", "programming", "coding", "development"}},
	{models.CategoryStudent, []string{"học", "sinh viên", "student", "học tập", "nghiên cứu"}},
	{models.CategoryOffice, []string{"văn phòng", "office", "làm việc", "word", "excel", "powerpoint"}},
}

// knownBrands in check order. Matches title-case into the profile.
var knownBrands = []string{"asus", "dell", "hp", "lenovo", "acer", "msi", "macbook", "apple"}

var ramPattern = regexp.MustCompile(`(\d+)\s*gb.*ram|ram.*?(\d+)\s*gb`)

// gpuKeywords signal a discrete-GPU requirement.
var gpuKeywords = []string{"gpu", "card đồ họa", "rtx", "gtx", "gaming", "thiết kế"}

// ExtractPreferences derives a structured preference profile from one
// free-text message. Each field is independent and first-match-wins:
// once a pattern sets a field, lower-priority patterns never change it.
func ExtractPreferences(message string) models.PreferenceProfile {
	var prefs models.PreferenceProfile
	lower := strings.ToLower(message)

	extractBudget(lower, &prefs)

	for _, ck := range categoryKeywords {
		if prefs.Category != "" {
			break
		}
		for _, kw := range ck.keywords {
			if strings.Contains(lower, kw) {
				prefs.Category = ck.category
				break
			}
		}
	}

	for _, brand := range knownBrands {
		if strings.Contains(lower, brand) {
			prefs.Brand = titleCase(brand)
			break
		}
	}

	if m := ramPattern.FindStringSubmatch(lower); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if n, err := strconv.Atoi(raw); err == nil {
			prefs.RAMMin = &n
		}
	}

	for _, kw := range gpuKeywords {
		if strings.Contains(lower, kw) {
			prefs.GPURequired = true
			break
		}
	}

	return prefs
}

// extractBudget applies the budget patterns in priority order. A
// "dưới" (under) qualifier sets only the maximum, "trên" (over) only
// the minimum; an unqualified amount becomes a ±20% band around itself.
func extractBudget(lower string, prefs *models.PreferenceProfile) {
	for _, bp := range budgetPatterns {
		m := bp.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}
		amount := n * bp.scale

		switch m[1] {
		case "dưới":
			prefs.BudgetMax = &amount
		case "trên":
			prefs.BudgetMin = &amount
		default:
			lo := amount * 8 / 10
			hi := amount * 12 / 10
			prefs.BudgetMin = &lo
			prefs.BudgetMax = &hi
		}
		return
	}
}

// titleCase uppercases the first letter of an ASCII brand token.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
