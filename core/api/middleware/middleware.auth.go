// Package middleware chứa các middleware HTTP của ứng dụng.
package middleware

import (
	"strings"

	"page_builder/core/api/handler"
	models "page_builder/core/api/models/mongodb"
	"page_builder/core/api/services"
	"page_builder/core/common"

	fiber "github.com/gofiber/fiber/v3"
)

// AuthManager giữ service xác thực dùng chung cho middleware
type AuthManager struct {
	accounts *services.TenantAccountService
}

// NewAuthManager tạo manager xác thực
func NewAuthManager(accounts *services.TenantAccountService) *AuthManager {
	return &AuthManager{accounts: accounts}
}

// extractBearerToken lấy token từ header Authorization
func extractBearerToken(c fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(auth)
}

// resolveScope suy ra tenantToken scope dữ liệu cho request: luôn là
// TenantToken ổn định của tài khoản, không bao giờ là JWT đăng nhập.
// Superadmin được phép impersonate tenant khác qua tham số ?tenant=.
func resolveScope(account *models.TenantAccount, impersonated string) string {
	if account.IsSuperAdmin && impersonated != "" {
		return impersonated
	}
	return account.TenantToken
}

// RequireAuth xác thực JWT trên mọi request: verify chữ ký phía server rồi
// load tài khoản từ database. Token hợp lệ nhưng không còn là token hiện hành
// của tài khoản nào sẽ bị từ chối. Sau khi xác thực, gắn vào locals:
//   - tenant_token: scope dữ liệu của request
//   - tenant_id, account, is_superadmin
//
// Tài khoản superadmin có thể truyền ?tenant= để xem dữ liệu của tenant khác.
func (m *AuthManager) RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return respondAuthError(c, common.ErrTokenMissing)
		}

		// Verify chữ ký và hạn trước khi chạm vào database
		if _, err := m.accounts.VerifyToken(token); err != nil {
			return respondAuthError(c, err)
		}

		account, err := m.accounts.FindByToken(c.Context(), token)
		if err != nil {
			return respondAuthError(c, common.ErrTokenInvalid)
		}

		c.Locals("tenant_token", resolveScope(&account, c.Query("tenant")))
		c.Locals("tenant_id", account.ID.Hex())
		c.Locals("account", account)
		c.Locals("is_superadmin", account.IsSuperAdmin)

		return c.Next()
	}
}

// respondAuthError trả lỗi xác thực theo envelope chuẩn của hệ thống
func respondAuthError(c fiber.Ctx, err error) error {
	var h handler.BaseHandler
	h.HandleResponse(c, nil, err)
	return nil
}
