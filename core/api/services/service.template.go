package services

import (
	"context"
	"fmt"

	"page_builder/core/api/dto"
	models "page_builder/core/api/models/mongodb"
	"page_builder/core/common"
	"page_builder/core/global"
	"page_builder/core/layout"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TemplateService xử lý nghiệp vụ cho mẫu trang
type TemplateService struct {
	*BaseServiceMongo[models.Template]
}

// NewTemplateService tạo service trên collection templates đã đăng ký
func NewTemplateService() (*TemplateService, error) {
	col := global.GetCollection(global.MongoDB_ColNames.Templates)
	if col == nil {
		return nil, fmt.Errorf("collection %s chưa được khởi tạo", global.MongoDB_ColNames.Templates)
	}
	return &TemplateService{
		BaseServiceMongo: NewBaseServiceMongo[models.Template](col),
	}, nil
}

// BuildSections chuyển input section thành SectionDefinition hoàn chỉnh:
// kiểm tra loại section, sinh ID khi thiếu và seed config mặc định theo loại.
func BuildSections(inputs []dto.SectionDefinitionInput) ([]models.SectionDefinition, error) {
	sections := make([]models.SectionDefinition, 0, len(inputs))
	for _, in := range inputs {
		if !models.IsValidSectionType(in.Type) {
			return nil, common.NewError(common.ErrCodeBusinessTemplate,
				fmt.Sprintf("Loại section không được hỗ trợ: %s", in.Type),
				common.StatusBadRequest, nil)
		}

		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}

		// Seed config mặc định rồi ghi đè bằng config client gửi lên
		config := models.DefaultSectionConfig(in.Type)
		for k, v := range in.Config {
			config[k] = v
		}

		sections = append(sections, models.SectionDefinition{
			ID:       id,
			Title:    in.Title,
			Type:     in.Type,
			Required: in.Required,
			Slot:     in.Slot,
			Config:   config,
		})
	}
	return sections, nil
}

// SectionsStructurallyEqual so sánh cấu trúc hai danh sách section.
// Chỉ xét các field ảnh hưởng tới nội dung đã điền: ID, loại và bắt buộc.
// Dùng để quyết định có tăng version của mẫu đã publish hay không.
func SectionsStructurallyEqual(a, b []models.SectionDefinition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Type != b[i].Type || a[i].Required != b[i].Required {
			return false
		}
	}
	return true
}

// Create tạo mẫu trang mới ở trạng thái draft, version 1.
// tenantToken rỗng hoặc input.Global = true tạo mẫu dùng chung.
func (s *TemplateService) Create(ctx context.Context, input *dto.TemplateCreateInput, tenantToken string) (models.Template, error) {
	var zero models.Template

	if !layout.IsValidLayoutKey(input.LayoutKey) {
		return zero, common.ErrLayoutUnknown
	}

	sections, err := BuildSections(input.Sections)
	if err != nil {
		return zero, err
	}

	tpl := models.Template{
		Name:        input.Name,
		Description: input.Description,
		Heading:     input.Heading,
		Subheading:  input.Subheading,
		Type:        input.Type,
		LayoutKey:   input.LayoutKey,
		Thumbnail:   input.Thumbnail,
		Status:      models.TemplateStatusDraft,
		Sections:    sections,
		Version:     1,
	}
	if !input.Global && tenantToken != "" {
		tpl.TenantToken = &tenantToken
	}

	return s.InsertOne(ctx, tpl)
}

// scopeFilter trả về filter giới hạn mẫu thuộc tenant hoặc mẫu dùng chung
func (s *TemplateService) scopeFilter(tenantToken string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"tenantToken": tenantToken},
		bson.M{"tenantToken": bson.M{"$exists": false}},
		bson.M{"tenantToken": nil},
	}}
}

// FindByIdScoped lấy mẫu theo ID trong phạm vi tenant (mẫu của tenant hoặc mẫu dùng chung)
func (s *TemplateService) FindByIdScoped(ctx context.Context, id primitive.ObjectID, tenantToken string) (models.Template, error) {
	filter := s.scopeFilter(tenantToken)
	filter["_id"] = id
	tpl, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		if appErr, ok := err.(*common.Error); ok && appErr.StatusCode == common.StatusNotFound {
			return tpl, common.ErrTemplateNotFound
		}
		return tpl, err
	}
	return tpl, nil
}

// List liệt kê mẫu trong phạm vi tenant, lọc theo status nếu có, phân trang
func (s *TemplateService) List(ctx context.Context, tenantToken, status string, page, limit int64) (*PaginateResult[models.Template], error) {
	filter := s.scopeFilter(tenantToken)
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// Update cập nhật mẫu trang. Thay đổi cấu trúc section của mẫu đã publish
// (hoặc mẫu được publish trong chính lần cập nhật này) sẽ tăng version.
func (s *TemplateService) Update(ctx context.Context, id primitive.ObjectID, input *dto.TemplateUpdateInput, tenantToken string) (models.Template, error) {
	var zero models.Template

	existing, err := s.FindByIdScoped(ctx, id, tenantToken)
	if err != nil {
		return zero, err
	}

	set := map[string]interface{}{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Heading != nil {
		set["heading"] = *input.Heading
	}
	if input.Subheading != nil {
		set["subheading"] = *input.Subheading
	}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.Thumbnail != nil {
		set["thumbnail"] = *input.Thumbnail
	}
	if input.LayoutKey != nil {
		if !layout.IsValidLayoutKey(*input.LayoutKey) {
			return zero, common.ErrLayoutUnknown
		}
		set["layoutKey"] = *input.LayoutKey
	}

	status := existing.Status
	if input.Status != nil {
		if *input.Status != models.TemplateStatusDraft && *input.Status != models.TemplateStatusPublished {
			return zero, common.NewError(common.ErrCodeBusinessTemplate,
				fmt.Sprintf("Trạng thái không hợp lệ: %s", *input.Status),
				common.StatusBadRequest, nil)
		}
		status = *input.Status
		set["status"] = status
	}

	update := &UpdateData{Set: set}

	if input.Sections != nil {
		sections, err := BuildSections(input.Sections)
		if err != nil {
			return zero, err
		}
		set["sections"] = sections

		// Mẫu đã (hoặc đang được) publish mà cấu trúc thay đổi thì tăng version
		wasOrIsPublished := existing.Status == models.TemplateStatusPublished || status == models.TemplateStatusPublished
		if wasOrIsPublished && !SectionsStructurallyEqual(existing.Sections, sections) {
			update.Inc = map[string]interface{}{"version": int64(1)}
		}
	}

	return s.UpdateById(ctx, id, update)
}

// Delete xóa mẫu trang theo ID trong phạm vi tenant.
// Không cascade: trang nội dung và bộ câu hỏi tham chiếu tới mẫu vẫn còn,
// các API đọc sẽ tự loại bỏ bản ghi có mẫu không còn resolve được.
func (s *TemplateService) Delete(ctx context.Context, id primitive.ObjectID, tenantToken string) error {
	if _, err := s.FindByIdScoped(ctx, id, tenantToken); err != nil {
		return err
	}
	return s.DeleteById(ctx, id)
}
