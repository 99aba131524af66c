package services

import (
	"context"
	"fmt"
	"io"

	"page_builder/core/api/dto"
	models "page_builder/core/api/models/mongodb"
	"page_builder/core/common"
	"page_builder/core/global"
	"page_builder/core/media"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SectionFile là một file người dùng gửi kèm cho một section media
type SectionFile struct {
	Filename string    // Tên file gốc
	Content  io.Reader // Nội dung file
}

// SectionWrite mô tả việc cần làm cho một section khi ghi nội dung:
// upload file mới hoặc lưu giá trị sẵn có.
type SectionWrite struct {
	ID       string // ID section
	Type     string // Loại section
	FromFile bool   // true = giá trị lấy từ file upload
	Value    string // Giá trị lưu trực tiếp khi FromFile = false
}

// PlanSectionWrites duyệt section của mẫu theo thứ tự và quyết định giá trị
// sẽ lưu cho từng section. existing là giá trị đã lưu (nil khi tạo mới);
// section thiếu giá trị mới sẽ giữ giá trị đã lưu. Section bắt buộc mà không
// có giá trị nào sẽ trả lỗi 400 kèm tên section.
func PlanSectionWrites(
	defs []models.SectionDefinition,
	values map[string]string,
	hasFile map[string]bool,
	existing map[string]models.SectionValue,
) ([]SectionWrite, error) {
	writes := make([]SectionWrite, 0, len(defs))

	for _, def := range defs {
		if models.IsUploadType(def.Type) {
			if hasFile[def.ID] {
				writes = append(writes, SectionWrite{ID: def.ID, Type: def.Type, FromFile: true})
				continue
			}
			if prev, ok := existing[def.ID]; ok && prev.Value != "" {
				writes = append(writes, SectionWrite{ID: def.ID, Type: def.Type, Value: prev.Value})
				continue
			}
			if def.Required {
				return nil, common.NewError(common.ErrCodeBusinessContent,
					fmt.Sprintf("Thiếu file cho section bắt buộc: %s", def.Title),
					common.StatusBadRequest, nil)
			}
			continue
		}

		// Section text / link nhận giá trị từ form value
		if v, ok := values[def.ID]; ok && v != "" {
			writes = append(writes, SectionWrite{ID: def.ID, Type: def.Type, Value: v})
			continue
		}
		if prev, ok := existing[def.ID]; ok && prev.Value != "" {
			writes = append(writes, SectionWrite{ID: def.ID, Type: def.Type, Value: prev.Value})
			continue
		}
		if def.Required {
			return nil, common.NewError(common.ErrCodeBusinessContent,
				fmt.Sprintf("Thiếu giá trị cho section bắt buộc: %s", def.Title),
				common.StatusBadRequest, nil)
		}
	}

	return writes, nil
}

// ContentWithMeta là trang nội dung kèm thông tin join cho màn hình quản trị
type ContentWithMeta struct {
	models.ContentDocument
	TemplateName string `json:"templateName"` // Tên mẫu trang
	CreatorEmail string `json:"creatorEmail"` // Email người tạo, rỗng nếu không tra được
}

// ContentService xử lý nghiệp vụ cho trang nội dung
type ContentService struct {
	*BaseServiceMongo[models.ContentDocument]
	templates *TemplateService
	accounts  *TenantAccountService
	uploader  media.Uploader
}

// NewContentService tạo service trên collection content_documents đã đăng ký
func NewContentService(templates *TemplateService, accounts *TenantAccountService, uploader media.Uploader) (*ContentService, error) {
	col := global.GetCollection(global.MongoDB_ColNames.ContentDocuments)
	if col == nil {
		return nil, fmt.Errorf("collection %s chưa được khởi tạo", global.MongoDB_ColNames.ContentDocuments)
	}
	return &ContentService{
		BaseServiceMongo: NewBaseServiceMongo[models.ContentDocument](col),
		templates:        templates,
		accounts:         accounts,
		uploader:         uploader,
	}, nil
}

// executeWrites thực hiện danh sách SectionWrite: upload file mới và dựng
// map giá trị cuối cùng. Một upload thất bại làm hỏng cả request; file đã
// upload trước đó trong cùng request có thể thành mồ côi trên host.
func (s *ContentService) executeWrites(writes []SectionWrite, files map[string]SectionFile) (map[string]models.SectionValue, error) {
	result := make(map[string]models.SectionValue, len(writes))
	for _, w := range writes {
		if !w.FromFile {
			result[w.ID] = models.SectionValue{Type: w.Type, Value: w.Value}
			continue
		}
		f, ok := files[w.ID]
		if !ok {
			return nil, common.ErrMediaUpload
		}
		url, err := s.uploader.Upload(f.Filename, f.Content)
		if err != nil {
			return nil, err
		}
		result[w.ID] = models.SectionValue{Type: w.Type, Value: url}
	}
	return result, nil
}

// Create tạo trang nội dung từ mẫu. values chứa form value theo ID section,
// files chứa file part theo ID section.
func (s *ContentService) Create(
	ctx context.Context,
	form *dto.ContentCreateForm,
	values map[string]string,
	files map[string]SectionFile,
	tenantToken string,
) (models.ContentDocument, error) {
	var zero models.ContentDocument

	templateID, err := primitive.ObjectIDFromHex(form.TemplateID)
	if err != nil {
		return zero, common.ErrInvalidInput
	}

	tpl, err := s.templates.FindByIdScoped(ctx, templateID, tenantToken)
	if err != nil {
		return zero, err
	}

	hasFile := make(map[string]bool, len(files))
	for id := range files {
		hasFile[id] = true
	}

	writes, err := PlanSectionWrites(tpl.Sections, values, hasFile, nil)
	if err != nil {
		return zero, err
	}

	sections, err := s.executeWrites(writes, files)
	if err != nil {
		return zero, err
	}

	doc := models.ContentDocument{
		TemplateID:      tpl.ID,
		TemplateVersion: tpl.Version,
		TenantToken:     tenantToken,
		Heading:         form.Heading,
		Subheading:      form.Subheading,
		BackgroundColor: form.BackgroundColor,
		AskUserDetails:  form.AskUserDetails,
		Sections:        sections,
		CreatedBy:       form.UserID,
	}

	return s.InsertOne(ctx, doc)
}

// Update cập nhật trang nội dung. Section không gửi giá trị mới giữ giá trị
// đã lưu; section bắt buộc chỉ lỗi khi không có cả giá trị mới lẫn giá trị cũ.
func (s *ContentService) Update(
	ctx context.Context,
	id primitive.ObjectID,
	form *dto.ContentUpdateForm,
	values map[string]string,
	files map[string]SectionFile,
	tenantToken string,
) (models.ContentDocument, error) {
	var zero models.ContentDocument

	doc, err := s.FindOne(ctx, bson.M{"_id": id, "tenantToken": tenantToken}, nil)
	if err != nil {
		return zero, err
	}

	tpl, err := s.templates.FindByIdScoped(ctx, doc.TemplateID, tenantToken)
	if err != nil {
		return zero, err
	}

	hasFile := make(map[string]bool, len(files))
	for fid := range files {
		hasFile[fid] = true
	}

	writes, err := PlanSectionWrites(tpl.Sections, values, hasFile, doc.Sections)
	if err != nil {
		return zero, err
	}

	sections, err := s.executeWrites(writes, files)
	if err != nil {
		return zero, err
	}

	set := map[string]interface{}{
		"sections":  sections,
		"updatedBy": form.UserID,
	}
	if form.Heading != "" {
		set["heading"] = form.Heading
	}
	if form.Subheading != "" {
		set["subheading"] = form.Subheading
	}
	if form.BackgroundColor != "" {
		set["backgroundColor"] = form.BackgroundColor
	}
	if form.AskUserDetails != nil {
		set["askUserDetails"] = *form.AskUserDetails
	}

	return s.UpdateById(ctx, id, &UpdateData{Set: set})
}

// FindByIdScoped lấy trang nội dung theo ID trong phạm vi tenant
func (s *ContentService) FindByIdScoped(ctx context.Context, id primitive.ObjectID, tenantToken string) (models.ContentDocument, error) {
	return s.FindOne(ctx, bson.M{"_id": id, "tenantToken": tenantToken}, nil)
}

// ListByCreator liệt kê trang nội dung do một người dùng tạo trong phạm vi tenant
func (s *ContentService) ListByCreator(ctx context.Context, userID, tenantToken string) ([]models.ContentDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"createdBy": userID, "tenantToken": tenantToken}, opts)
}

// BuildContentListing gắn tên mẫu và email người tạo vào từng trang nội dung.
// lookupTemplate trả về (tên mẫu, true) khi mẫu còn resolve được; trang có mẫu
// không còn resolve được (đã bị xóa) bị loại khỏi kết quả. Kết quả tra cứu
// được cache trong một lần list để tránh query lặp.
func BuildContentListing(
	docs []models.ContentDocument,
	lookupTemplate func(primitive.ObjectID) (string, bool),
	lookupEmail func(string) string,
) []ContentWithMeta {
	templateNames := map[primitive.ObjectID]string{}
	creatorEmails := map[string]string{}

	enriched := make([]ContentWithMeta, 0, len(docs))
	for _, doc := range docs {
		name, seen := templateNames[doc.TemplateID]
		if !seen {
			resolved, ok := lookupTemplate(doc.TemplateID)
			if !ok {
				// Mẫu đã bị xóa: đánh dấu và bỏ qua trang này
				templateNames[doc.TemplateID] = ""
				continue
			}
			name = resolved
			templateNames[doc.TemplateID] = name
		}
		if name == "" {
			continue
		}

		email, seen := creatorEmails[doc.CreatedBy]
		if !seen {
			email = lookupEmail(doc.CreatedBy)
			creatorEmails[doc.CreatedBy] = email
		}

		enriched = append(enriched, ContentWithMeta{
			ContentDocument: doc,
			TemplateName:    name,
			CreatorEmail:    email,
		})
	}

	return enriched
}

// ListByTenant liệt kê trang nội dung của tenant kèm tên mẫu và email người
// tạo. Trang có mẫu không còn resolve được sẽ bị loại khỏi kết quả.
func (s *ContentService) ListByTenant(ctx context.Context, tenantToken string, page, limit int64) ([]ContentWithMeta, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	result, err := s.FindWithPagination(ctx, bson.M{"tenantToken": tenantToken}, page, limit, opts)
	if err != nil {
		return nil, err
	}

	lookupTemplate := func(id primitive.ObjectID) (string, bool) {
		tpl, err := s.templates.FindByIdScoped(ctx, id, tenantToken)
		if err != nil {
			return "", false
		}
		return tpl.Name, true
	}
	lookupEmail := func(userID string) string {
		return s.lookupCreatorEmail(ctx, userID)
	}

	return BuildContentListing(result.Items, lookupTemplate, lookupEmail), nil
}

// lookupCreatorEmail tra email người tạo từ collection tài khoản, rỗng nếu không tra được
func (s *ContentService) lookupCreatorEmail(ctx context.Context, userID string) string {
	if s.accounts == nil {
		return ""
	}
	accountID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ""
	}
	account, err := s.accounts.FindOneById(ctx, accountID)
	if err != nil {
		return ""
	}
	return account.Email
}

// Delete xóa cứng trang nội dung. Không cascade sang bài làm của người xem.
func (s *ContentService) Delete(ctx context.Context, id primitive.ObjectID, tenantToken string) error {
	if _, err := s.FindByIdScoped(ctx, id, tenantToken); err != nil {
		return err
	}
	return s.DeleteById(ctx, id)
}
