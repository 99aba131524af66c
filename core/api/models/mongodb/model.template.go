package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateStatus định nghĩa trạng thái của mẫu trang
const (
	TemplateStatusDraft     = "draft"     // Bản nháp
	TemplateStatusPublished = "published" // Đã xuất bản
)

// Template đại diện cho một mẫu trang do admin thiết kế.
// Người dùng chọn mẫu rồi điền nội dung vào các section để tạo trang của mình.
type Template struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của mẫu trang

	// ===== DISPLAY =====
	Name        string `json:"name" bson:"name" index:"single:1"`                  // Tên hiển thị của mẫu
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Mô tả ngắn
	Heading     string `json:"heading,omitempty" bson:"heading,omitempty"`         // Tiêu đề mặc định của trang
	Subheading  string `json:"subheading,omitempty" bson:"subheading,omitempty"`   // Phụ đề mặc định của trang
	Thumbnail   string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`     // URL ảnh đại diện của mẫu

	// ===== CLASSIFICATION =====
	Type      string `json:"type,omitempty" bson:"type,omitempty"`                  // Phân loại tự do do admin đặt (landing, event, ...)
	LayoutKey string `json:"layoutKey" bson:"layoutKey" index:"single:1"`           // Khóa bố cục quyết định cách render, tách khỏi tên hiển thị
	Status    string `json:"status" bson:"status" index:"single:1" default:"draft"` // Trạng thái: draft, published

	// ===== STRUCTURE =====
	Sections []SectionDefinition `json:"sections" bson:"sections"` // Danh sách section theo thứ tự hiển thị
	Version  int64               `json:"version" bson:"version"`   // Tăng khi cấu trúc section của mẫu đã publish thay đổi

	// ===== SCOPE =====
	TenantToken *string `json:"tenantToken,omitempty" bson:"tenantToken,omitempty" index:"single:1"` // Tenant sở hữu mẫu, nil = mẫu dùng chung

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
