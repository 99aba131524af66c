package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Đọc từ file env theo môi trường (config/env/<GO_ENV>.env) và override bằng biến môi trường.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật ký JWT (tenant token)
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Cloudinary (media host) - upload unsigned preset
	CloudinaryCloudName    string `env:"CLOUDINARY_CLOUD_NAME"`    // Cloud name của tài khoản Cloudinary
	CloudinaryUploadPreset string `env:"CLOUDINARY_UPLOAD_PRESET"` // Upload preset (unsigned)

	// Stripe (thanh toán) - tạo Checkout Session cho layout payment
	StripeSecretKey  string `env:"STRIPE_SECRET_KEY"`                                   // Secret key của Stripe
	StripeSuccessURL string `env:"STRIPE_SUCCESS_URL" envDefault:"https://example.com"` // URL redirect khi thanh toán thành công
	StripeCancelURL  string `env:"STRIPE_CANCEL_URL" envDefault:"https://example.com"`  // URL redirect khi hủy thanh toán

	// SMTP (email thông báo response)
	SMTPHost     string `env:"SMTP_HOST"`                                // SMTP host
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`               // SMTP port
	SMTPUsername string `env:"SMTP_USERNAME"`                            // SMTP username
	SMTPPassword string `env:"SMTP_PASSWORD"`                            // SMTP password
	SMTPFrom     string `env:"SMTP_FROM"`                                // Địa chỉ gửi
	SMTPFromName string `env:"SMTP_FROM_NAME" envDefault:"Page Builder"` // Tên hiển thị người gửi

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên các thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
