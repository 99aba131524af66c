package handler

import (
	"page_builder/core/api/dto"
	"page_builder/core/api/services"

	fiber "github.com/gofiber/fiber/v3"
)

// TemplateHandler xử lý các request quản lý mẫu trang
type TemplateHandler struct {
	BaseHandler
	service *services.TemplateService
}

// NewTemplateHandler tạo handler cho mẫu trang
func NewTemplateHandler(service *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// HandleCreate tạo mẫu trang mới ở trạng thái draft
func (h *TemplateHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(dto.TemplateCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.service.Create(c.Context(), input, tenantToken)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleList liệt kê mẫu trang của tenant (kèm mẫu dùng chung), lọc theo status
func (h *TemplateHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.List(c.Context(), tenantToken, c.Query("status"), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleFindById lấy một mẫu trang theo ID
func (h *TemplateHandler) HandleFindById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tpl, err := h.service.FindByIdScoped(c.Context(), id, tenantToken)
		h.HandleResponse(c, tpl, err)
		return nil
	})
}

// HandleUpdate cập nhật mẫu trang, tăng version khi cấu trúc mẫu đã publish thay đổi
func (h *TemplateHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(dto.TemplateUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.service.Update(c.Context(), id, input, tenantToken)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleDelete xóa mẫu trang. Không cascade sang trang nội dung và bộ câu hỏi.
func (h *TemplateHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.Delete(c.Context(), id, tenantToken)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
