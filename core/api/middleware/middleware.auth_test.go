package middleware

import (
	"testing"

	models "page_builder/core/api/models/mongodb"

	"github.com/stretchr/testify/assert"
)

func TestResolveScope(t *testing.T) {
	account := &models.TenantAccount{
		TenantToken: "tenant-abc",
		Token:       "jwt-moi-nhat-sau-dang-nhap",
	}

	t.Run("Scope la TenantToken on dinh, khong phai JWT dang nhap", func(t *testing.T) {
		assert.Equal(t, "tenant-abc", resolveScope(account, ""))
	})

	t.Run("Dang nhap lai doi JWT nhung scope giu nguyen", func(t *testing.T) {
		before := resolveScope(account, "")
		account.Token = "jwt-khac-sau-lan-dang-nhap-sau"
		assert.Equal(t, before, resolveScope(account, ""))
	})

	t.Run("Tai khoan thuong khong duoc impersonate tenant khac", func(t *testing.T) {
		assert.Equal(t, "tenant-abc", resolveScope(account, "tenant-xyz"))
	})

	t.Run("Superadmin duoc impersonate qua tham so tenant", func(t *testing.T) {
		admin := &models.TenantAccount{TenantToken: "admin-scope", IsSuperAdmin: true}
		assert.Equal(t, "tenant-xyz", resolveScope(admin, "tenant-xyz"))
		assert.Equal(t, "admin-scope", resolveScope(admin, ""))
	})
}
