package dto

// SectionDefinitionInput là một section trong payload tạo/cập nhật mẫu trang.
// ID để trống sẽ được server tự sinh; Config để trống sẽ được seed theo loại.
type SectionDefinitionInput struct {
	ID       string                 `json:"id,omitempty"`              // Định danh section, tùy chọn
	Title    string                 `json:"title" validate:"required"` // Tên hiển thị
	Type     string                 `json:"type" validate:"required"`  // text, image, video, file, link
	Required bool                   `json:"required"`                  // Bắt buộc nhập khi tạo nội dung
	Slot     string                 `json:"slot,omitempty"`            // Vai trò hiển thị trong bố cục
	Config   map[string]interface{} `json:"config,omitempty"`          // Cấu hình riêng, ghi đè mặc định
}

// TemplateCreateInput là input để tạo mẫu trang (luôn tạo ở trạng thái draft)
type TemplateCreateInput struct {
	Name        string                   `json:"name" validate:"required"`      // Tên mẫu
	Description string                   `json:"description,omitempty"`         // Mô tả ngắn
	Heading     string                   `json:"heading,omitempty"`             // Tiêu đề mặc định
	Subheading  string                   `json:"subheading,omitempty"`          // Phụ đề mặc định
	Type        string                   `json:"type,omitempty"`                // Phân loại tự do
	LayoutKey   string                   `json:"layoutKey" validate:"required"` // Khóa bố cục
	Thumbnail   string                   `json:"thumbnail,omitempty"`           // URL ảnh đại diện
	Sections    []SectionDefinitionInput `json:"sections" validate:"required"`  // Danh sách section theo thứ tự
	Global      bool                     `json:"global,omitempty"`              // true = mẫu dùng chung cho mọi tenant
}

// TemplateUpdateInput là input để cập nhật mẫu trang.
// Thay đổi Sections trên mẫu đã publish sẽ tăng version.
type TemplateUpdateInput struct {
	Name        *string                  `json:"name,omitempty"`        // Tên mẫu
	Description *string                  `json:"description,omitempty"` // Mô tả ngắn
	Heading     *string                  `json:"heading,omitempty"`     // Tiêu đề mặc định
	Subheading  *string                  `json:"subheading,omitempty"`  // Phụ đề mặc định
	Type        *string                  `json:"type,omitempty"`        // Phân loại tự do
	LayoutKey   *string                  `json:"layoutKey,omitempty"`   // Khóa bố cục
	Thumbnail   *string                  `json:"thumbnail,omitempty"`   // URL ảnh đại diện
	Status      *string                  `json:"status,omitempty"`      // draft, published
	Sections    []SectionDefinitionInput `json:"sections,omitempty"`    // Thay thế toàn bộ danh sách section
}
