package global

import (
	"page_builder/config"
	"page_builder/core/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Templates        string // Tên collection cho mẫu trang
	ContentDocuments string // Tên collection cho nội dung trang của người dùng
	QuestionSets     string // Tên collection cho bộ câu hỏi gắn với mẫu trang
	UserResponses    string // Tên collection cho bài làm của người dùng
	TenantAccounts   string // Tên collection cho tài khoản tenant
}

// Các biến toàn cục
var Validate *validator.Validate            // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client           // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration      // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections

// InitColNames gán tên chuẩn cho các collection của hệ thống
func InitColNames() {
	MongoDB_ColNames.Templates = "templates"
	MongoDB_ColNames.ContentDocuments = "content_documents"
	MongoDB_ColNames.QuestionSets = "question_sets"
	MongoDB_ColNames.UserResponses = "user_responses"
	MongoDB_ColNames.TenantAccounts = "tenant_accounts"
}

// InitValidator khởi tạo validator dùng chung cho toàn hệ thống
func InitValidator() {
	Validate = validator.New()
}

// GetCollection lấy collection đã đăng ký theo tên, trả về nil nếu chưa có
func GetCollection(name string) *mongo.Collection {
	col, exists := RegistryCollections.Get(name)
	if !exists {
		return nil
	}
	return col
}
