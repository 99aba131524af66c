// Package layout quyết định cách render một trang nội dung.
// Mỗi mẫu trang mang một layoutKey cố định; renderer duy nhất đọc slot của
// từng section để dựng RenderPlan, không còn mỗi bố cục một hàm render riêng.
package layout

import (
	"strings"

	models "page_builder/core/api/models/mongodb"
)

// Các layout key được hỗ trợ
const (
	LayoutLanding   = "landing"
	LayoutPayment   = "payment"
	LayoutThankyou  = "thankyou"
	LayoutPortfolio = "portfolio"
	LayoutProduct   = "product"
	LayoutEvent     = "event"
	LayoutWebinar   = "webinar"
	LayoutProfile   = "profile"
	LayoutGallery   = "gallery"
	LayoutContact   = "contact"
	LayoutMinimal   = "minimal"
)

// validLayoutKeys là tập layout key hợp lệ
var validLayoutKeys = map[string]bool{
	LayoutLanding:   true,
	LayoutPayment:   true,
	LayoutThankyou:  true,
	LayoutPortfolio: true,
	LayoutProduct:   true,
	LayoutEvent:     true,
	LayoutWebinar:   true,
	LayoutProfile:   true,
	LayoutGallery:   true,
	LayoutContact:   true,
	LayoutMinimal:   true,
}

// legacyNameToLayoutKey ánh xạ tên hiển thị của các mẫu cũ (chưa có layoutKey)
// sang layout key. Chỉ dùng khi Template.LayoutKey rỗng.
var legacyNameToLayoutKey = map[string]string{
	"landing page":  LayoutLanding,
	"payment page":  LayoutPayment,
	"thank you":     LayoutThankyou,
	"thankyou page": LayoutThankyou,
	"portfolio":     LayoutPortfolio,
	"product page":  LayoutProduct,
	"event page":    LayoutEvent,
	"webinar":       LayoutWebinar,
	"profile page":  LayoutProfile,
	"gallery":       LayoutGallery,
	"contact page":  LayoutContact,
}

// IsValidLayoutKey kiểm tra một layout key có được hỗ trợ hay không
func IsValidLayoutKey(key string) bool {
	return validLayoutKeys[key]
}

// ValidLayoutKeys trả về danh sách layout key hợp lệ
func ValidLayoutKeys() []string {
	return []string{
		LayoutLanding, LayoutPayment, LayoutThankyou, LayoutPortfolio,
		LayoutProduct, LayoutEvent, LayoutWebinar, LayoutProfile,
		LayoutGallery, LayoutContact, LayoutMinimal,
	}
}

// ResolveLayoutKey xác định layout key cho một mẫu trang.
// Ưu tiên LayoutKey trên mẫu; mẫu cũ chưa có layoutKey thì tra theo tên
// hiển thị; không khớp thì dùng minimal.
func ResolveLayoutKey(tpl *models.Template) string {
	if tpl == nil {
		return LayoutMinimal
	}
	if IsValidLayoutKey(tpl.LayoutKey) {
		return tpl.LayoutKey
	}
	if key, ok := legacyNameToLayoutKey[strings.ToLower(strings.TrimSpace(tpl.Name))]; ok {
		return key
	}
	return LayoutMinimal
}

// RenderedSection là một section đã gắn giá trị và slot, sẵn sàng để render
type RenderedSection struct {
	SectionID string `json:"sectionId"` // ID section trong mẫu
	Title     string `json:"title"`     // Tên hiển thị của section
	Type      string `json:"type"`      // Loại section
	Slot      string `json:"slot"`      // Vai trò hiển thị đã resolve
	Value     string `json:"value"`     // Giá trị người dùng đã điền
}

// RenderPlan là toàn bộ dữ liệu client cần để dựng trang
type RenderPlan struct {
	LayoutKey       string                       `json:"layoutKey"`       // Bố cục của trang
	Heading         string                       `json:"heading"`         // Tiêu đề trang
	Subheading      string                       `json:"subheading"`      // Phụ đề trang
	BackgroundColor string                       `json:"backgroundColor"` // Màu nền
	ShowPopup       bool                         `json:"showPopup"`       // Hiện popup câu hỏi khi mở trang
	Sections        []RenderedSection            `json:"sections"`        // Toàn bộ section theo thứ tự của mẫu
	Slots           map[string][]RenderedSection `json:"slots"`           // Section gom theo slot
}

// AssembleRenderPlan dựng RenderPlan từ mẫu trang và nội dung đã điền.
// Section có tag slot dùng luôn slot đó; section không tag được gán theo
// quy ước vị trí cũ: media thứ N đi với text thứ N, text cuối cùng (khi có
// nhiều hơn một text) là nhãn nút, section link là đường dẫn của nút.
func AssembleRenderPlan(tpl *models.Template, doc *models.ContentDocument, hasQuestionSet bool) *RenderPlan {
	plan := &RenderPlan{
		LayoutKey:       ResolveLayoutKey(tpl),
		Heading:         doc.Heading,
		Subheading:      doc.Subheading,
		BackgroundColor: doc.BackgroundColor,
		ShowPopup:       doc.AskUserDetails && hasQuestionSet,
		Sections:        []RenderedSection{},
		Slots:           map[string][]RenderedSection{},
	}

	// Dựng danh sách section theo thứ tự của mẫu, kèm giá trị đã điền
	rendered := make([]RenderedSection, 0, len(tpl.Sections))
	for _, def := range tpl.Sections {
		value := ""
		if sv, ok := doc.Sections[def.ID]; ok {
			value = sv.Value
		}
		rendered = append(rendered, RenderedSection{
			SectionID: def.ID,
			Title:     def.Title,
			Type:      def.Type,
			Slot:      def.Slot,
			Value:     value,
		})
	}

	// Gán slot theo quy ước vị trí cho các section chưa có tag
	assignFallbackSlots(rendered)

	plan.Sections = rendered
	for _, sec := range rendered {
		plan.Slots[sec.Slot] = append(plan.Slots[sec.Slot], sec)
	}
	return plan
}

// assignFallbackSlots gán slot cho các section chưa có tag.
// Quy ước cũ: text đầu tiên là headline, text cuối cùng là nhãn nút (khi có
// từ 2 text trở lên), text ở giữa là body; media đầu tiên là hero, media sau
// là media; link là buttonLink; file là media.
func assignFallbackSlots(sections []RenderedSection) {
	var textIdx, mediaIdx []int
	for i := range sections {
		if sections[i].Slot != "" {
			continue
		}
		switch sections[i].Type {
		case models.SectionTypeText:
			textIdx = append(textIdx, i)
		case models.SectionTypeImage, models.SectionTypeVideo, models.SectionTypeFile:
			mediaIdx = append(mediaIdx, i)
		case models.SectionTypeLink:
			sections[i].Slot = models.SlotButtonLink
		default:
			sections[i].Slot = models.SlotBody
		}
	}

	for n, i := range textIdx {
		switch {
		case n == 0:
			sections[i].Slot = models.SlotHeadline
		case n == len(textIdx)-1:
			sections[i].Slot = models.SlotButton
		default:
			sections[i].Slot = models.SlotBody
		}
	}

	for n, i := range mediaIdx {
		if n == 0 {
			sections[i].Slot = models.SlotHero
		} else {
			sections[i].Slot = models.SlotMedia
		}
	}
}
