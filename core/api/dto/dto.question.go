package dto

// QuestionOptionInput là một lựa chọn trong payload tạo câu hỏi
type QuestionOptionInput struct {
	Text      string `json:"text"`      // Nội dung lựa chọn, lựa chọn rỗng bị lọc bỏ
	IsCorrect bool   `json:"isCorrect"` // Đáp án đúng, mỗi câu đúng một lựa chọn
}

// QuestionInput là một câu hỏi trong payload tạo bộ câu hỏi
type QuestionInput struct {
	QuestionText string                `json:"questionText" validate:"required"` // Nội dung câu hỏi
	Options      []QuestionOptionInput `json:"options" validate:"required"`      // Tối thiểu 2 lựa chọn sau khi lọc rỗng
	Required     bool                  `json:"required"`                         // Bắt buộc trả lời
}

// QuestionSetCreateInput là input để tạo bộ câu hỏi cho một mẫu trang.
// Mỗi mẫu trang chỉ được một bộ câu hỏi.
type QuestionSetCreateInput struct {
	TemplateID string          `json:"templateId" validate:"required"`      // ID mẫu trang
	UserID     string          `json:"userId" validate:"required"`          // Người tạo
	Questions  []QuestionInput `json:"questions" validate:"required,min=1"` // Danh sách câu hỏi
}

// QuestionSetUpdateInput là input để cập nhật bộ câu hỏi
type QuestionSetUpdateInput struct {
	Questions []QuestionInput `json:"questions" validate:"required,min=1"` // Thay thế toàn bộ danh sách câu hỏi
}
