package dto

// ContentCreateForm là các field form trong request multipart tạo trang nội dung.
// Giá trị của từng section được đọc theo ID section: field text/link lấy từ
// form value, field media lấy từ file part cùng tên.
type ContentCreateForm struct {
	TemplateID      string `json:"templateId" validate:"required"` // ID mẫu trang
	UserID          string `json:"userId" validate:"required"`     // Người tạo trang
	Heading         string `json:"heading" validate:"required"`    // Tiêu đề trang
	Subheading      string `json:"subheading" validate:"required"` // Phụ đề trang
	BackgroundColor string `json:"backgroundColor,omitempty"`      // Màu nền, mặc định #ffffff
	AskUserDetails  bool   `json:"askUserDetails,omitempty"`       // Hiện popup thu thập thông tin
}

// ContentUpdateForm là các field form trong request multipart cập nhật trang.
// Section không gửi giá trị mới sẽ giữ giá trị đã lưu.
type ContentUpdateForm struct {
	UserID          string `json:"userId" validate:"required"` // Người cập nhật
	Heading         string `json:"heading,omitempty"`          // Tiêu đề trang
	Subheading      string `json:"subheading,omitempty"`       // Phụ đề trang
	BackgroundColor string `json:"backgroundColor,omitempty"`  // Màu nền
	AskUserDetails  *bool  `json:"askUserDetails,omitempty"`   // Hiện popup thu thập thông tin
}
