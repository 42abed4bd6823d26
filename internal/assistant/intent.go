// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package assistant

import (
	"regexp"
	"strings"
)

// Intent is the coarse conversational goal detected in a user message.
type Intent string

const (
	IntentRecommend Intent = "recommend"
	IntentCompare   Intent = "compare"
	IntentExplain   Intent = "explain"
	IntentSearch    Intent = "search"
	IntentPrice     Intent = "price"
	IntentGeneral   Intent = "general"
	IntentBlocked   Intent = "blocked"
)

// intentRule binds one intent to its trigger patterns.
type intentRule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// intentRules are evaluated in order against lowercased input; the
// first matching rule decides. Recommend outranks compare outranks
// explain and so on, so "so sánh và tư vấn" classifies as recommend.
var intentRules = []intentRule{
	{
		intent: IntentRecommend,
		patterns: compileAll(
			`tư vấn|gợi ý|đề xuất|nên mua|phù hợp|tốt nhất`,
			`laptop.*cho.*(gaming|game|chơi game)`,
			`laptop.*cho.*(học|sinh viên|student)`,
			`laptop.*cho.*(văn phòng|office|làm việc)`,
			`laptop.*cho.*(thiết kế|design|đồ họa)`,
			`laptop.*cho.*(lập trình|dev|programming)`,
		),
	},
	{
		intent: IntentCompare,
		patterns: compileAll(
			`so sánh|khác nhau|tốt hơn|nên chọn|giữa`,
			`laptop.*vs.*laptop|laptop.*và.*laptop`,
		),
	},
	{
		intent: IntentExplain,
		patterns: compileAll(
			`giải thích|nghĩa là|tức là|là gì|hoạt động`,
			`cpu.*là|ram.*là|gpu.*là|ssd.*là`,
		),
	},
	{
		intent: IntentSearch,
		patterns: compileAll(
			`tìm|tìm kiếm|tìm laptop|mua laptop`,
			`laptop.*giá|laptop.*dưới|laptop.*trên`,
		),
	},
	{
		intent: IntentPrice,
		patterns: compileAll(
			`giá|giá cả|tiền|chi phí|ngân sách`,
			`đắt|rẻ|phù hợp.*giá|trong tầm giá`,
		),
	},
}

// ClassifyIntent maps a user message to its intent. Messages matching
// no rule classify as general.
func ClassifyIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, p := range rule.patterns {
			if p.MatchString(lower) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}
