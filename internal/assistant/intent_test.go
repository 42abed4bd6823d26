// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package assistant

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"recommend keyword", "tư vấn giúp mình một chiếc laptop", IntentRecommend},
		{"recommend for gaming", "laptop nào cho chơi game mượt", IntentRecommend},
		{"recommend for student", "laptop cho sinh viên ngành y", IntentRecommend},
		{"compare", "so sánh hai mẫu này giúp mình", IntentCompare},
		{"compare vs", "laptop A vs laptop B cái nào ngon", IntentCompare},
		{"explain", "ram là gì vậy", IntentExplain},
		{"explain spec", "giải thích giúp mình thông số cpu", IntentExplain},
		{"search", "tìm laptop màn 14 inch", IntentSearch},
		{"price", "cái này đắt hay rẻ", IntentPrice},
		{"uppercase input", "TƯ VẤN LAPTOP", IntentRecommend},
		{"no match", "xin chào", IntentGeneral},
		{"empty", "", IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.message); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyIntent_RuleOrder(t *testing.T) {
	// Matches both recommend ("tư vấn") and price ("giá") rules;
	// recommend is evaluated first.
	if got := ClassifyIntent("tư vấn laptop giá tốt"); got != IntentRecommend {
		t.Errorf("got %q, want recommend", got)
	}

	// Matches both compare ("so sánh") and price ("giá").
	if got := ClassifyIntent("so sánh giá hai mẫu"); got != IntentCompare {
		t.Errorf("got %q, want compare", got)
	}
}
