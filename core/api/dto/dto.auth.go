package dto

// RegisterInput là input đăng ký tài khoản tenant
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`           // Tên hiển thị của tenant
	Email    string `json:"email" validate:"required,email"`    // Email đăng nhập
	Password string `json:"password" validate:"required,min=8"` // Mật khẩu
}

// LoginInput là input đăng nhập
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"` // Email đăng nhập
	Password string `json:"password" validate:"required"`    // Mật khẩu
}

// AuthOutput là kết quả đăng ký / đăng nhập.
// Token là JWT đăng nhập; TenantToken là định danh scope dữ liệu ổn định.
type AuthOutput struct {
	ID          string `json:"id"`          // ID tài khoản
	Name        string `json:"name"`        // Tên hiển thị
	Email       string `json:"email"`       // Email
	Token       string `json:"token"`       // JWT đăng nhập
	TenantToken string `json:"tenantToken"` // Định danh scope dữ liệu
}
