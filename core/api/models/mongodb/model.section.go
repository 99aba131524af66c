package models

// SectionType định nghĩa các loại section được hỗ trợ trong mẫu trang
const (
	SectionTypeText  = "text"  // Đoạn văn bản
	SectionTypeImage = "image" // Hình ảnh
	SectionTypeVideo = "video" // Video
	SectionTypeFile  = "file"  // Tệp đính kèm
	SectionTypeLink  = "link"  // Đường dẫn
)

// SectionSlot định nghĩa vai trò hiển thị của section trong bố cục.
// Section không gắn slot sẽ được renderer gán theo quy ước vị trí cũ.
const (
	SlotHero       = "hero"       // Khối mở đầu trang
	SlotHeadline   = "headline"   // Tiêu đề chính
	SlotBody       = "body"       // Nội dung chính
	SlotMedia      = "media"      // Hình ảnh / video minh họa
	SlotButton     = "button"     // Nhãn nút call-to-action
	SlotButtonLink = "buttonLink" // Đường dẫn của nút call-to-action
	SlotFooter     = "footer"     // Khối cuối trang
)

// SectionDefinition định nghĩa một section trong mẫu trang.
// Thứ tự hiển thị là thứ tự của section trong mảng Sections của Template.
type SectionDefinition struct {
	ID       string                 `json:"id" bson:"id"`                             // Định danh section, sinh tự động nếu client không gửi
	Title    string                 `json:"title" bson:"title" validate:"required"`   // Tên hiển thị của section
	Type     string                 `json:"type" bson:"type" validate:"required"`     // Loại section: text, image, video, file, link
	Required bool                   `json:"required" bson:"required"`                 // Bắt buộc nhập khi tạo nội dung
	Slot     string                 `json:"slot,omitempty" bson:"slot,omitempty"`     // Vai trò hiển thị trong bố cục (tùy chọn)
	Config   map[string]interface{} `json:"config,omitempty" bson:"config,omitempty"` // Cấu hình tự do theo loại section
}

// sectionDefaultConfigs chứa cấu hình mặc định cho từng loại section.
// Được seed vào SectionDefinition khi tạo mẫu trang nếu client không gửi config.
var sectionDefaultConfigs = map[string]map[string]interface{}{
	SectionTypeText: {
		"minLength":   0,
		"maxLength":   500,
		"placeholder": "",
	},
	SectionTypeImage: {
		"maxSize":      5242880, // 5MB
		"allowedTypes": []string{"jpg", "jpeg", "png", "webp"},
		"width":        0,
		"height":       0,
		"aspectRatio":  "",
	},
	SectionTypeVideo: {
		"maxSize":      52428800, // 50MB
		"allowedTypes": []string{"mp4", "webm"},
	},
	SectionTypeFile: {
		"maxSize":      10485760, // 10MB
		"allowedTypes": []string{"pdf", "doc", "docx"},
	},
	SectionTypeLink: {
		"placeholder": "https://",
	},
}

// IsValidSectionType kiểm tra loại section có được hỗ trợ hay không
func IsValidSectionType(sectionType string) bool {
	_, ok := sectionDefaultConfigs[sectionType]
	return ok
}

// DefaultSectionConfig trả về bản copy cấu hình mặc định theo loại section.
// Trả về map rỗng nếu loại không tồn tại.
func DefaultSectionConfig(sectionType string) map[string]interface{} {
	defaults, ok := sectionDefaultConfigs[sectionType]
	if !ok {
		return map[string]interface{}{}
	}
	config := make(map[string]interface{}, len(defaults))
	for k, v := range defaults {
		config[k] = v
	}
	return config
}

// IsUploadType cho biết loại section có nhận file tải lên hay không
func IsUploadType(sectionType string) bool {
	return sectionType == SectionTypeImage || sectionType == SectionTypeVideo || sectionType == SectionTypeFile
}
