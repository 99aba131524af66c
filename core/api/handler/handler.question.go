package handler

import (
	"page_builder/core/api/dto"
	"page_builder/core/api/services"

	fiber "github.com/gofiber/fiber/v3"
)

// QuestionSetHandler xử lý các request quản lý bộ câu hỏi
type QuestionSetHandler struct {
	BaseHandler
	service *services.QuestionSetService
}

// NewQuestionSetHandler tạo handler cho bộ câu hỏi
func NewQuestionSetHandler(service *services.QuestionSetService) *QuestionSetHandler {
	return &QuestionSetHandler{service: service}
}

// HandleCreate tạo bộ câu hỏi cho một mẫu trang.
// Mẫu đã có bộ câu hỏi thì trả 409.
func (h *QuestionSetHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(dto.QuestionSetCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.service.Create(c.Context(), input, tenantToken)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleFindByTemplate lấy bộ câu hỏi của một mẫu trang.
// Endpoint public: người xem landing page cần câu hỏi để làm bài.
func (h *QuestionSetHandler) HandleFindByTemplate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		templateID, err := h.ParseObjectID(c, "templateId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set, err := h.service.FindByTemplate(c.Context(), templateID)
		h.HandleResponse(c, set, err)
		return nil
	})
}

// HandleUpdate thay toàn bộ danh sách câu hỏi của một bộ
func (h *QuestionSetHandler) HandleUpdate(c fiber.Ctx) error {
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

		input := new(dto.QuestionSetUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.service.Update(c.Context(), id, input, tenantToken)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleDelete xóa bộ câu hỏi
func (h *QuestionSetHandler) HandleDelete(c fiber.Ctx) error {
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
