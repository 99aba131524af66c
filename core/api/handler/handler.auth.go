package handler

import (
	"page_builder/core/api/dto"
	"page_builder/core/api/services"

	fiber "github.com/gofiber/fiber/v3"
)

// AuthHandler xử lý đăng ký và đăng nhập tài khoản tenant
type AuthHandler struct {
	BaseHandler
	service *services.TenantAccountService
}

// NewAuthHandler tạo handler cho auth
func NewAuthHandler(service *services.TenantAccountService) *AuthHandler {
	return &AuthHandler{service: service}
}

// HandleRegister đăng ký tài khoản tenant mới.
// Token trả về đồng thời là tenantToken scope dữ liệu.
func (h *AuthHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(dto.RegisterInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.service.Register(c.Context(), input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleLogin đăng nhập và cấp token mới
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(dto.LoginInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.service.Login(c.Context(), input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleProfile trả về thông tin tài khoản đang đăng nhập
func (h *AuthHandler) HandleProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		account := c.Locals("account")
		h.HandleResponse(c, account, nil)
		return nil
	})
}
