package dto

// ResponderInfoInput là thông tin người xem gửi kèm bài làm
type ResponderInfoInput struct {
	Name  string `json:"name" validate:"required"`        // Họ tên
	Email string `json:"email" validate:"required,email"` // Email nhận kết quả
	Phone string `json:"phone,omitempty"`                 // Số điện thoại
}

// AnswerInput là câu trả lời cho một câu hỏi, đối chiếu theo vị trí.
// SelectedOption nhận cả nội dung đầy đủ của lựa chọn lẫn ký hiệu tắt a-f,
// server sẽ chuẩn hóa về nội dung đầy đủ trước khi lưu.
type AnswerInput struct {
	SelectedOption string `json:"selectedOption"` // Lựa chọn đã chọn
}

// UserResponseCreateInput là input để nộp bài làm cho bộ câu hỏi của mẫu trang
type UserResponseCreateInput struct {
	TemplateID string             `json:"templateId" validate:"required"` // ID mẫu trang
	UserInfo   ResponderInfoInput `json:"userInfo" validate:"required"`   // Thông tin người làm bài
	Responses  []AnswerInput      `json:"responses" validate:"required"`  // Câu trả lời theo thứ tự câu hỏi
}

// EnrichedAnswer là câu trả lời đã gắn kèm nội dung câu hỏi, dùng cho màn hình admin
type EnrichedAnswer struct {
	QuestionText   string `json:"questionText"`   // Nội dung câu hỏi theo vị trí
	SelectedOption string `json:"selectedOption"` // Lựa chọn đã chuẩn hóa về nội dung đầy đủ
}
