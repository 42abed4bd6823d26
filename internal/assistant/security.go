// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package assistant

import (
	"regexp"
	"strings"

	"github.com/ngocvb/laptoplens/internal/metrics"
)

// maxMessageLen caps sanitized user input length in runes.
const maxMessageLen = 1000

var (
	dangerousChars = regexp.MustCompile(`[<>";(){}]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// blockCategory groups the sensitive-topic patterns behind one refusal
// message. Category order is significant: the first match wins.
type blockCategory struct {
	name     string
	patterns []*regexp.Regexp
	response string
}

// blockCategories are checked in order against lowercased input. The
// filter is a best-effort guardrail for accidental sensitive queries,
// not a hardened boundary; real secrets are never in the model's reach.
var blockCategories = []blockCategory{
	{
		name: "password",
		patterns: compileAll(
			`password|mật khẩu|pass|pwd`,
			`login.*credential|thông tin.*đăng nhập`,
			`authentication.*secret|bí mật.*xác thực`,
		),
		response: "Tôi không thể hỗ trợ các câu hỏi liên quan đến mật khẩu hoặc thông tin đăng nhập. Để được hỗ trợ về tài khoản, vui lòng liên hệ bộ phận CSKH.",
	},
	{
		name: "personal_info",
		patterns: compileAll(
			`personal.*information|thông tin.*cá nhân`,
			`private.*data|dữ liệu.*riêng tư`,
			`user.*profile|hồ sơ.*người dùng`,
			`email.*address|địa chỉ.*email`,
			`phone.*number|số.*điện thoại`,
			`credit.*card|thẻ.*tín dụng`,
			`bank.*account|tài khoản.*ngân hàng`,
		),
		response: "Tôi không thể truy cập hoặc thảo luận về thông tin cá nhân của người dùng. Tôi chỉ có thể tư vấn về laptop và thông số kỹ thuật.",
	},
	{
		name: "security",
		patterns: compileAll(
			`security.*vulnerability|lỗ hổng.*bảo mật|vulnerabilities`,
			`system.*admin|quản trị.*hệ thống`,
			`database.*access|truy cập.*cơ sở dữ liệu`,
			`api.*key|khóa.*api`,
			`secret.*token|mã.*bí mật`,
			`encryption.*key|khóa.*mã hóa`,
			`hack|hacker|exploit`,
		),
		response: "Tôi không thể thảo luận về các vấn đề bảo mật hệ thống. Tôi được thiết kế để tư vấn laptop và giải đáp thắc mắc kỹ thuật.",
	},
	{
		name: "system_info",
		patterns: compileAll(
			`server.*config|cấu hình.*máy chủ`,
			`system.*file|tệp.*hệ thống`,
			`internal.*network|mạng.*nội bộ`,
			`infrastructure|cơ sở.*hạ tầng`,
		),
		response: "Tôi không thể cung cấp thông tin về hệ thống nội bộ. Tôi chỉ có thể tư vấn về laptop và công nghệ tiêu dùng.",
	},
}

// responseKeywords trigger outbound response substitution when found
// in generated text (lowercased substring match).
var responseKeywords = []string{
	"password", "mật khẩu", "api key", "secret", "token",
	"admin", "root", "database", "server config",
}

const (
	// redirectResponse replaces generated text that tripped the
	// outbound keyword scan.
	redirectResponse = "Tôi chỉ có thể tư vấn về laptop và thông số kỹ thuật. Bạn có câu hỏi nào về laptop không?"

	// emptyResponseFallback replaces empty generated text.
	emptyResponseFallback = "Xin lỗi, tôi không thể tạo phản hồi phù hợp. Vui lòng thử lại với câu hỏi về laptop."
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// Sanitize strips dangerous characters from user input, collapses
// whitespace runs to single spaces, trims, and caps the length. The
// result may be empty.
func Sanitize(message string) string {
	message = dangerousChars.ReplaceAllString(message, "")
	// Truncate on rune boundaries so Vietnamese text is never cut
	// mid-character.
	if runes := []rune(message); len(runes) > maxMessageLen {
		message = string(runes[:maxMessageLen])
	}
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(message, " "))
}

// IsQueryBlocked checks the (already sanitized) message against the
// sensitive-topic categories. On a hit it returns the category name
// and the canned Vietnamese refusal to send instead of calling the
// completion service.
func IsQueryBlocked(message string) (blocked bool, category, response string) {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, cat := range blockCategories {
		for _, p := range cat.patterns {
			if p.MatchString(lower) {
				metrics.BlockedQueriesTotal.WithLabelValues(cat.name).Inc()
				return true, cat.name, cat.response
			}
		}
	}
	return false, "", ""
}

// ValidateResponse scans generated text for sensitive keywords and
// substitutes a canned redirect when one appears. Empty text gets a
// fallback apology.
func ValidateResponse(response string) string {
	if strings.TrimSpace(response) == "" {
		return emptyResponseFallback
	}
	lower := strings.ToLower(response)
	for _, kw := range responseKeywords {
		if strings.Contains(lower, kw) {
			metrics.SanitizedResponsesTotal.Inc()
			return redirectResponse
		}
	}
	return response
}
