package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionOption là một lựa chọn trong câu hỏi trắc nghiệm
type QuestionOption struct {
	Text      string `json:"text" bson:"text"`           // Nội dung lựa chọn
	IsCorrect bool   `json:"isCorrect" bson:"isCorrect"` // Đánh dấu đáp án đúng, mỗi câu đúng một lựa chọn
}

// Question là một câu hỏi trắc nghiệm trong bộ câu hỏi
type Question struct {
	QuestionText string           `json:"questionText" bson:"questionText"` // Nội dung câu hỏi
	Options      []QuestionOption `json:"options" bson:"options"`           // Tối thiểu 2 lựa chọn sau khi lọc rỗng
	Required     bool             `json:"required" bson:"required"`         // Người xem bắt buộc trả lời
}

// QuestionSet là bộ câu hỏi gắn với một mẫu trang.
// Mỗi mẫu trang chỉ có tối đa một bộ câu hỏi (ràng buộc bằng unique index).
type QuestionSet struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bộ câu hỏi

	TemplateID  primitive.ObjectID `json:"templateId" bson:"templateId" index:"unique"`     // Mẫu trang sở hữu bộ câu hỏi
	TenantToken string             `json:"tenantToken" bson:"tenantToken" index:"single:1"` // Tenant sở hữu

	Questions []Question `json:"questions" bson:"questions"` // Danh sách câu hỏi theo thứ tự hiển thị
	CreatedBy string     `json:"createdBy" bson:"createdBy"` // Người tạo bộ câu hỏi

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
