package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TenantAccount là tài khoản của một tenant trên hệ thống.
// TenantToken được cấp một lần khi đăng ký và không đổi qua các lần đăng nhập;
// mọi dữ liệu của tenant được scope theo giá trị này. JWT đăng nhập (Token)
// chỉ là credential, có thể được cấp lại bất cứ lúc nào.
type TenantAccount struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của tài khoản

	Email        string `json:"email" bson:"email" index:"unique" validate:"required,email"` // Email đăng nhập, duy nhất
	PasswordHash string `json:"-" bson:"passwordHash"`                                       // Mật khẩu đã hash bằng bcrypt, không trả về client
	Name         string `json:"name" bson:"name"`                                            // Tên hiển thị của tenant

	IsSuperAdmin bool   `json:"isSuperAdmin" bson:"isSuperAdmin"`                                         // Quyền xem dữ liệu mọi tenant
	TenantToken  string `json:"tenantToken,omitempty" bson:"tenantToken,omitempty" index:"unique,sparse"` // Định danh scope dữ liệu, cấp một lần khi đăng ký
	Token        string `json:"token,omitempty" bson:"token,omitempty" index:"single:1"`                  // JWT đăng nhập hiện hành

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
