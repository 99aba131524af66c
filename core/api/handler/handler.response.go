package handler

import (
	"page_builder/core/api/dto"
	"page_builder/core/api/services"

	fiber "github.com/gofiber/fiber/v3"
)

// UserResponseHandler xử lý các request nộp và xem bài làm
type UserResponseHandler struct {
	BaseHandler
	service *services.UserResponseService
}

// NewUserResponseHandler tạo handler cho bài làm
func NewUserResponseHandler(service *services.UserResponseService) *UserResponseHandler {
	return &UserResponseHandler{service: service}
}

// HandleCreate nhận bài làm của người xem ẩn danh, không yêu cầu đăng nhập.
// Scope tenant được service suy ra từ bộ câu hỏi đang được trả lời.
// Câu trả lời được chuẩn hóa về nội dung đầy đủ trước khi lưu; sau khi lưu
// gửi mail thông báo best-effort cho admin tenant và người làm bài.
func (h *UserResponseHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(dto.UserResponseCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.service.Create(c.Context(), input)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleListByTemplate liệt kê bài làm của một mẫu trang cho màn hình admin,
// mỗi câu trả lời kèm nội dung câu hỏi theo vị trí.
func (h *UserResponseHandler) HandleListByTemplate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		templateID, err := h.ParseObjectID(c, "templateId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		responses, err := h.service.ListByTemplate(c.Context(), templateID, tenantToken)
		h.HandleResponse(c, responses, err)
		return nil
	})
}
