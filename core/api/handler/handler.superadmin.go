package handler

import (
	"page_builder/core/api/services"
	"page_builder/core/common"

	fiber "github.com/gofiber/fiber/v3"
)

// SuperadminHandler phục vụ console quản trị cross-tenant
type SuperadminHandler struct {
	BaseHandler
	service *services.SuperadminService
}

// NewSuperadminHandler tạo handler thống kê
func NewSuperadminHandler(service *services.SuperadminService) *SuperadminHandler {
	return &SuperadminHandler{service: service}
}

// HandleOverview trả về thống kê dữ liệu theo từng tenant.
// Chỉ tài khoản superadmin được gọi.
func (h *SuperadminHandler) HandleOverview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		isSuper, _ := c.Locals("is_superadmin").(bool)
		if !isSuper {
			h.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		overview, err := h.service.Overview(c.Context())
		h.HandleResponse(c, overview, err)
		return nil
	})
}
