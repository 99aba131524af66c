package handler

import (
	"mime/multipart"
	"strconv"

	"page_builder/core/api/dto"
	"page_builder/core/api/services"
	"page_builder/core/common"
	"page_builder/core/global"

	fiber "github.com/gofiber/fiber/v3"
)

// contentMetaFields là các form field không phải giá trị section
var contentMetaFields = map[string]bool{
	"templateId":      true,
	"userId":          true,
	"heading":         true,
	"subheading":      true,
	"backgroundColor": true,
	"askUserDetails":  true,
}

// ContentHandler xử lý các request tạo và quản lý trang nội dung
type ContentHandler struct {
	BaseHandler
	service *services.ContentService
}

// NewContentHandler tạo handler cho trang nội dung
func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// parseSectionParts tách form multipart thành giá trị text và file theo ID section.
// Trả về hàm cleanup để đóng các file đã mở.
func parseSectionParts(form *multipart.Form) (map[string]string, map[string]services.SectionFile, func(), error) {
	values := map[string]string{}
	for key, vals := range form.Value {
		if contentMetaFields[key] || len(vals) == 0 {
			continue
		}
		values[key] = vals[0]
	}

	files := map[string]services.SectionFile{}
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for key, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		f, err := headers[0].Open()
		if err != nil {
			cleanup()
			return nil, nil, func() {}, common.NewError(
				common.ErrCodeValidationFormat, "Không đọc được file tải lên", common.StatusBadRequest, err)
		}
		opened = append(opened, f)
		files[key] = services.SectionFile{Filename: headers[0].Filename, Content: f}
	}

	return values, files, cleanup, nil
}

// HandleCreate tạo trang nội dung từ mẫu (request multipart).
// Section media lấy giá trị từ file part, section text/link lấy từ form value.
func (h *ContentHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		form, err := c.MultipartForm()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat, "Request phải là multipart/form-data", common.StatusBadRequest, err))
			return nil
		}

		askUserDetails, _ := strconv.ParseBool(c.FormValue("askUserDetails"))
		input := &dto.ContentCreateForm{
			TemplateID:      c.FormValue("templateId"),
			UserID:          c.FormValue("userId"),
			Heading:         c.FormValue("heading"),
			Subheading:      c.FormValue("subheading"),
			BackgroundColor: c.FormValue("backgroundColor"),
			AskUserDetails:  askUserDetails,
		}
		if err := global.Validate.Struct(input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}

		values, files, cleanup, err := parseSectionParts(form)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer cleanup()

		created, err := h.service.Create(c.Context(), input, values, files, tenantToken)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleUpdate cập nhật trang nội dung (request multipart).
// Section không gửi giá trị mới sẽ giữ giá trị đã lưu.
func (h *ContentHandler) HandleUpdate(c fiber.Ctx) error {
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

		form, err := c.MultipartForm()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat, "Request phải là multipart/form-data", common.StatusBadRequest, err))
			return nil
		}

		input := &dto.ContentUpdateForm{
			UserID:          c.FormValue("userId"),
			Heading:         c.FormValue("heading"),
			Subheading:      c.FormValue("subheading"),
			BackgroundColor: c.FormValue("backgroundColor"),
		}
		if raw := c.FormValue("askUserDetails"); raw != "" {
			v, _ := strconv.ParseBool(raw)
			input.AskUserDetails = &v
		}
		if err := global.Validate.Struct(input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}

		values, files, cleanup, err := parseSectionParts(form)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer cleanup()

		updated, err := h.service.Update(c.Context(), id, input, values, files, tenantToken)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleFindById lấy một trang nội dung theo ID
func (h *ContentHandler) HandleFindById(c fiber.Ctx) error {
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

		doc, err := h.service.FindByIdScoped(c.Context(), id, tenantToken)
		h.HandleResponse(c, doc, err)
		return nil
	})
}

// HandleListByCreator liệt kê trang nội dung do một người dùng tạo
func (h *ContentHandler) HandleListByCreator(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		userID := c.Params("userId")
		if userID == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		docs, err := h.service.ListByCreator(c.Context(), userID, tenantToken)
		h.HandleResponse(c, docs, err)
		return nil
	})
}

// HandleListByTenant liệt kê trang nội dung của tenant kèm tên mẫu và email người tạo.
// Trang có mẫu không còn tồn tại bị loại khỏi kết quả.
func (h *ContentHandler) HandleListByTenant(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tenantToken, err := h.TenantTokenFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		docs, err := h.service.ListByTenant(c.Context(), tenantToken, page, limit)
		h.HandleResponse(c, docs, err)
		return nil
	})
}

// HandleDelete xóa cứng trang nội dung. Bài làm của người xem không bị xóa theo.
func (h *ContentHandler) HandleDelete(c fiber.Ctx) error {
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
