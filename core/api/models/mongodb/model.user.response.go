package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponderInfo là thông tin người xem điền vào popup trước khi làm bài
type ResponderInfo struct {
	Name  string `json:"name" bson:"name"`   // Họ tên người xem
	Email string `json:"email" bson:"email"` // Email nhận kết quả
	Phone string `json:"phone" bson:"phone"` // Số điện thoại liên hệ
}

// AnswerItem là câu trả lời cho một câu hỏi, đối chiếu theo vị trí
// với mảng Questions của QuestionSet.
type AnswerItem struct {
	SelectedOption string `json:"selectedOption" bson:"selectedOption"` // Nội dung đầy đủ của lựa chọn đã chọn
}

// UserResponse là một bài làm của người xem cho bộ câu hỏi của mẫu trang.
// Bài làm chỉ ghi một lần, không có thao tác cập nhật.
type UserResponse struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bài làm

	TemplateID  primitive.ObjectID `json:"templateId" bson:"templateId" index:"single:1"`   // Mẫu trang chứa bộ câu hỏi
	TenantToken string             `json:"tenantToken" bson:"tenantToken" index:"single:1"` // Tenant sở hữu

	UserInfo  ResponderInfo `json:"userInfo" bson:"userInfo"`   // Thông tin người làm bài
	Responses []AnswerItem  `json:"responses" bson:"responses"` // Câu trả lời theo thứ tự câu hỏi

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian nộp bài
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật (bằng thời gian tạo)
}
