// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package assistant

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/ngocvb/laptoplens/internal/models"
)

// promptCandidateCap is how many candidates are embedded in the prompt.
const promptCandidateCap = 5

// promptHistoryCap is how many trailing messages are embedded as
// conversation context.
const promptHistoryCap = 3

const basePrompt = `Bạn là AI tư vấn laptop chuyên nghiệp với dữ liệu thực tế từ website. Hãy trả lời ngắn gọn, rõ ràng bằng tiếng Việt.

**QUY TẮC NGHIÊM NGẶT:**
- CHỈ gợi ý laptop có trong dữ liệu được cung cấp
- KHÔNG được tự tạo hoặc bịa đặt laptop không có trong database
- Nếu không có laptop phù hợp, hãy nói rõ "Không tìm thấy laptop phù hợp"
- Tối đa 3-4 câu
- Sử dụng bullet points (•) cho danh sách
- In đậm (**text**) cho thông tin quan trọng
- Đưa ra lời khuyên cụ thể dựa trên dữ liệu thực tế
- Sử dụng xuống hàng (\n) để tách các ý chính
- Mỗi ý chính nên ở một dòng riêng

**Chuyên môn:**
• Tư vấn laptop theo nhu cầu (gaming, văn phòng, học tập, thiết kế)
• So sánh hiệu năng và giá cả dựa trên dữ liệu thực tế
• Giải thích thông số kỹ thuật đơn giản
• Đưa ra lựa chọn tốt nhất trong ngân sách`

// RenderPrompt builds the system prompt for one completion call. It is
// a pure function of the detected intent, extracted preferences, the
// candidate inventory slice, and the trailing conversation history.
// Candidates beyond the first five are dropped so the real inventory
// stays small enough to never crowd out the instructions.
func RenderPrompt(intent Intent, prefs models.PreferenceProfile, candidates []models.Laptop, history []models.ChatMessage) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	switch intent {
	case IntentRecommend:
		writeRecommendSection(&b, prefs, candidates)
	case IntentCompare:
		b.WriteString(`

**Nhiệm vụ hiện tại: So sánh laptop**
- Hãy so sánh chi tiết các laptop được đề cập
- Đưa ra ưu nhược điểm của từng mẫu
- Gợi ý laptop phù hợp nhất`)
	case IntentExplain:
		b.WriteString(`

**Nhiệm vụ hiện tại: Giải thích thông số**
- Giải thích đơn giản, dễ hiểu
- So sánh với các mẫu laptop khác
- Đưa ra lời khuyên thực tế`)
	case IntentPrice:
		b.WriteString(`

**Nhiệm vụ hiện tại: Tư vấn giá cả**
- Phân tích giá trị/tiền
- So sánh với các mẫu tương tự
- Đưa ra lựa chọn tốt nhất trong ngân sách`)
	}

	if len(history) > 0 {
		tail := history
		if len(tail) > promptHistoryCap {
			tail = tail[len(tail)-promptHistoryCap:]
		}
		b.WriteString("\n\n**Context cuộc trò chuyện:**\n")
		b.WriteString(marshalIndent(tail))
	}

	return b.String()
}

func writeRecommendSection(b *strings.Builder, prefs models.PreferenceProfile, candidates []models.Laptop) {
	fmt.Fprintf(b, `

**Nhiệm vụ hiện tại: Tư vấn laptop phù hợp**
- Ngân sách: %s - %s
- Danh mục: %s
- Thương hiệu: %s
- RAM tối thiểu: %s GB
- GPU rời: %s`,
		orUnlimited(prefs.BudgetMin),
		orUnlimited(prefs.BudgetMax),
		orAll(string(prefs.Category)),
		orAll(prefs.Brand),
		ramOrNone(prefs.RAMMin),
		yesNo(prefs.GPURequired),
	)

	if len(candidates) == 0 {
		b.WriteString(`

**KHÔNG TÌM THẤY LAPTOP PHÙ HỢP** trong database với tiêu chí trên.
Hãy thông báo cho user rằng không có laptop phù hợp và đề xuất mở rộng tiêu chí tìm kiếm.`)
		return
	}

	if len(candidates) > promptCandidateCap {
		candidates = candidates[:promptCandidateCap]
	}
	b.WriteString("\n\n**CHỈ GỢI Ý CÁC LAPTOP SAU ĐÂY (có trong database):**\n")
	b.WriteString(marshalIndent(candidates))
	b.WriteString("\n\n**LƯU Ý:** Chỉ được gợi ý laptop có trong danh sách trên. KHÔNG được tự tạo laptop khác.")
}

// marshalIndent renders v as indented JSON for prompt embedding. The
// inputs are our own structs, so a marshal failure is a programming
// error and renders as an empty list.
func marshalIndent(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

func orUnlimited(v *int64) string {
	if v == nil {
		return "Không giới hạn"
	}
	return models.FormatPrice(*v)
}

func orAll(s string) string {
	if s == "" {
		return "Tất cả"
	}
	return s
}

func ramOrNone(v *int) string {
	if v == nil {
		return "Không yêu cầu"
	}
	return fmt.Sprintf("%d", *v)
}

func yesNo(b bool) string {
	if b {
		return "Có"
	}
	return "Không yêu cầu"
}
