package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"page_builder/core/api/dto"
	models "page_builder/core/api/models/mongodb"
	"page_builder/core/common"
	"page_builder/core/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildQuestions kiểm tra và chuẩn hóa danh sách câu hỏi:
// nội dung không rỗng, lọc lựa chọn rỗng, tối thiểu 2 lựa chọn còn lại,
// đúng một lựa chọn được đánh dấu đúng.
func BuildQuestions(inputs []dto.QuestionInput) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(inputs))

	for i, in := range inputs {
		text := strings.TrimSpace(in.QuestionText)
		if text == "" {
			return nil, common.NewError(common.ErrCodeBusinessQuestion,
				fmt.Sprintf("Câu hỏi thứ %d thiếu nội dung", i+1),
				common.StatusBadRequest, nil)
		}

		options := make([]models.QuestionOption, 0, len(in.Options))
		correctCount := 0
		for _, opt := range in.Options {
			optText := strings.TrimSpace(opt.Text)
			if optText == "" {
				continue
			}
			if opt.IsCorrect {
				correctCount++
			}
			options = append(options, models.QuestionOption{Text: optText, IsCorrect: opt.IsCorrect})
		}

		if len(options) < 2 {
			return nil, common.NewError(common.ErrCodeBusinessQuestion,
				fmt.Sprintf("Câu hỏi thứ %d cần tối thiểu 2 lựa chọn", i+1),
				common.StatusBadRequest, nil)
		}
		if correctCount != 1 {
			return nil, common.NewError(common.ErrCodeBusinessQuestion,
				fmt.Sprintf("Câu hỏi thứ %d phải có đúng một đáp án đúng", i+1),
				common.StatusBadRequest, nil)
		}

		questions = append(questions, models.Question{
			QuestionText: text,
			Options:      options,
			Required:     in.Required,
		})
	}

	return questions, nil
}

// QuestionSetService xử lý nghiệp vụ cho bộ câu hỏi
type QuestionSetService struct {
	*BaseServiceMongo[models.QuestionSet]
	templates *TemplateService
}

// NewQuestionSetService tạo service trên collection question_sets đã đăng ký
func NewQuestionSetService(templates *TemplateService) (*QuestionSetService, error) {
	col := global.GetCollection(global.MongoDB_ColNames.QuestionSets)
	if col == nil {
		return nil, fmt.Errorf("collection %s chưa được khởi tạo", global.MongoDB_ColNames.QuestionSets)
	}
	return &QuestionSetService{
		BaseServiceMongo: NewBaseServiceMongo[models.QuestionSet](col),
		templates:        templates,
	}, nil
}

// Create tạo bộ câu hỏi cho một mẫu trang. Mỗi mẫu chỉ được một bộ:
// pre-check trả 409 sớm, unique index trên templateId chặn nốt trường hợp
// hai request tạo đồng thời.
func (s *QuestionSetService) Create(ctx context.Context, input *dto.QuestionSetCreateInput, tenantToken string) (models.QuestionSet, error) {
	var zero models.QuestionSet

	templateID, err := primitive.ObjectIDFromHex(input.TemplateID)
	if err != nil {
		return zero, common.ErrInvalidInput
	}

	if _, err := s.templates.FindByIdScoped(ctx, templateID, tenantToken); err != nil {
		return zero, err
	}

	exists, err := s.DocumentExists(ctx, bson.M{"templateId": templateID})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.ErrQuestionSetExists
	}

	questions, err := BuildQuestions(input.Questions)
	if err != nil {
		return zero, err
	}

	set := models.QuestionSet{
		TemplateID:  templateID,
		TenantToken: tenantToken,
		Questions:   questions,
		CreatedBy:   input.UserID,
	}

	created, err := s.InsertOne(ctx, set)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return zero, common.ErrQuestionSetExists
		}
		return zero, err
	}
	return created, nil
}

// FindByTemplate lấy bộ câu hỏi của một mẫu trang. Mỗi mẫu chỉ có một bộ
// (unique index trên templateId) nên tra theo templateId là đủ; người xem
// landing page gọi được mà không cần đăng nhập.
func (s *QuestionSetService) FindByTemplate(ctx context.Context, templateID primitive.ObjectID) (models.QuestionSet, error) {
	return s.FindOne(ctx, bson.M{"templateId": templateID}, nil)
}

// ExistsForTemplate kiểm tra mẫu trang đã có bộ câu hỏi chưa
func (s *QuestionSetService) ExistsForTemplate(ctx context.Context, templateID primitive.ObjectID) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"templateId": templateID})
}

// Update thay toàn bộ danh sách câu hỏi của một bộ
func (s *QuestionSetService) Update(ctx context.Context, id primitive.ObjectID, input *dto.QuestionSetUpdateInput, tenantToken string) (models.QuestionSet, error) {
	var zero models.QuestionSet

	if _, err := s.FindOne(ctx, bson.M{"_id": id, "tenantToken": tenantToken}, nil); err != nil {
		return zero, err
	}

	questions, err := BuildQuestions(input.Questions)
	if err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, id, &UpdateData{Set: map[string]interface{}{"questions": questions}})
}

// Delete xóa bộ câu hỏi trong phạm vi tenant
func (s *QuestionSetService) Delete(ctx context.Context, id primitive.ObjectID, tenantToken string) error {
	if _, err := s.FindOne(ctx, bson.M{"_id": id, "tenantToken": tenantToken}, nil); err != nil {
		return err
	}
	return s.DeleteById(ctx, id)
}
