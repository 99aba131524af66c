package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SectionValue là giá trị người dùng đã điền cho một section.
// Với section media, Value là secure URL trả về từ dịch vụ lưu trữ.
type SectionValue struct {
	Type  string `json:"type" bson:"type"`   // Loại section tại thời điểm lưu
	Value string `json:"value" bson:"value"` // Giá trị: văn bản, đường dẫn hoặc URL media
}

// ContentDocument đại diện cho một trang đã được người dùng điền nội dung từ mẫu.
type ContentDocument struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của trang nội dung

	// ===== TEMPLATE LINK =====
	TemplateID      primitive.ObjectID `json:"templateId" bson:"templateId" index:"single:1"` // Mẫu trang được dùng
	TemplateVersion int64              `json:"templateVersion" bson:"templateVersion"`        // Phiên bản mẫu tại thời điểm tạo nội dung

	// ===== SCOPE =====
	TenantToken string `json:"tenantToken" bson:"tenantToken" index:"single:1"` // Tenant sở hữu trang

	// ===== PAGE CONTENT =====
	Heading         string                  `json:"heading" bson:"heading"`                                   // Tiêu đề trang
	Subheading      string                  `json:"subheading" bson:"subheading"`                             // Phụ đề trang
	BackgroundColor string                  `json:"backgroundColor" bson:"backgroundColor" default:"#ffffff"` // Màu nền của trang
	AskUserDetails  bool                    `json:"askUserDetails" bson:"askUserDetails"`                     // Hiện popup thu thập thông tin người xem
	Sections        map[string]SectionValue `json:"sections" bson:"sections"`                                 // Giá trị đã điền, key là ID section trong mẫu

	// ===== AUDIT =====
	CreatedBy string `json:"createdBy" bson:"createdBy" index:"single:1"`    // Người tạo trang
	UpdatedBy string `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"` // Người cập nhật gần nhất

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
