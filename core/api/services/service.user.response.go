package services

import (
	"context"
	"fmt"
	"strings"

	"page_builder/core/api/dto"
	models "page_builder/core/api/models/mongodb"
	"page_builder/core/common"
	"page_builder/core/global"
	"page_builder/core/logger"
	"page_builder/core/mailer"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NormalizeAnswer chuẩn hóa một câu trả lời về nội dung đầy đủ của lựa chọn.
// Chấp nhận nội dung đầy đủ hoặc ký hiệu tắt a-f trỏ theo vị trí lựa chọn.
// Giá trị không khớp được giữ nguyên sau khi trim.
func NormalizeAnswer(answer string, opts []models.QuestionOption) string {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return ""
	}

	for _, opt := range opts {
		if answer == opt.Text {
			return opt.Text
		}
	}

	// Ký hiệu tắt một chữ cái a-f
	if len(answer) == 1 {
		c := strings.ToLower(answer)[0]
		if c >= 'a' && c <= 'f' {
			idx := int(c - 'a')
			if idx < len(opts) {
				return opts[idx].Text
			}
		}
	}

	return answer
}

// NormalizeAnswers chuẩn hóa bài làm theo vị trí câu hỏi.
// Câu trả lời thừa so với số câu hỏi bị bỏ qua; câu hỏi bắt buộc mà không
// có câu trả lời sẽ trả lỗi 400.
func NormalizeAnswers(questions []models.Question, answers []dto.AnswerInput) ([]models.AnswerItem, error) {
	normalized := make([]models.AnswerItem, len(questions))

	for i, q := range questions {
		value := ""
		if i < len(answers) {
			value = NormalizeAnswer(answers[i].SelectedOption, q.Options)
		}
		if value == "" && q.Required {
			return nil, common.NewError(common.ErrCodeBusinessQuestion,
				fmt.Sprintf("Câu hỏi bắt buộc chưa được trả lời: %s", q.QuestionText),
				common.StatusBadRequest, nil)
		}
		normalized[i] = models.AnswerItem{SelectedOption: value}
	}

	return normalized, nil
}

// EnrichAnswers gắn nội dung câu hỏi vào từng câu trả lời theo vị trí,
// đồng thời resolve ký hiệu tắt còn sót trong các bài làm cũ.
func EnrichAnswers(questions []models.Question, responses []models.AnswerItem) []dto.EnrichedAnswer {
	enriched := make([]dto.EnrichedAnswer, 0, len(responses))
	for i, r := range responses {
		questionText := ""
		selected := strings.TrimSpace(r.SelectedOption)
		if i < len(questions) {
			questionText = questions[i].QuestionText
			selected = NormalizeAnswer(selected, questions[i].Options)
		}
		enriched = append(enriched, dto.EnrichedAnswer{
			QuestionText:   questionText,
			SelectedOption: selected,
		})
	}
	return enriched
}

// ResponseWithMeta là bài làm đã enrich cho màn hình admin
type ResponseWithMeta struct {
	ID        primitive.ObjectID   `json:"id"`        // ID bài làm
	UserInfo  models.ResponderInfo `json:"userInfo"`  // Thông tin người làm bài
	Responses []dto.EnrichedAnswer `json:"responses"` // Câu trả lời kèm câu hỏi
	CreatedAt int64                `json:"createdAt"` // Thời gian nộp bài
}

// UserResponseService xử lý nghiệp vụ cho bài làm của người xem
type UserResponseService struct {
	*BaseServiceMongo[models.UserResponse]
	questionSets *QuestionSetService
	accounts     *TenantAccountService
	mail         mailer.Sender
}

// NewUserResponseService tạo service trên collection user_responses đã đăng ký
func NewUserResponseService(questionSets *QuestionSetService, accounts *TenantAccountService, mail mailer.Sender) (*UserResponseService, error) {
	col := global.GetCollection(global.MongoDB_ColNames.UserResponses)
	if col == nil {
		return nil, fmt.Errorf("collection %s chưa được khởi tạo", global.MongoDB_ColNames.UserResponses)
	}
	return &UserResponseService{
		BaseServiceMongo: NewBaseServiceMongo[models.UserResponse](col),
		questionSets:     questionSets,
		accounts:         accounts,
		mail:             mail,
	}, nil
}

// Create lưu một bài làm của người xem ẩn danh, không yêu cầu đăng nhập.
// Scope tenant lấy từ bộ câu hỏi đang được trả lời, không tin client tự khai.
// Câu trả lời được chuẩn hóa về nội dung đầy đủ ngay khi ghi; bài làm không
// bao giờ được cập nhật sau đó. Sau khi lưu, gửi hai email thông báo
// (admin tenant + người làm bài) theo kiểu best-effort: lỗi gửi mail chỉ
// được log, không làm hỏng request.
func (s *UserResponseService) Create(ctx context.Context, input *dto.UserResponseCreateInput) (models.UserResponse, error) {
	var zero models.UserResponse

	templateID, err := primitive.ObjectIDFromHex(input.TemplateID)
	if err != nil {
		return zero, common.ErrInvalidInput
	}

	set, err := s.questionSets.FindByTemplate(ctx, templateID)
	if err != nil {
		return zero, err
	}

	normalized, err := NormalizeAnswers(set.Questions, input.Responses)
	if err != nil {
		return zero, err
	}

	response := models.UserResponse{
		TemplateID:  templateID,
		TenantToken: set.TenantToken,
		UserInfo: models.ResponderInfo{
			Name:  input.UserInfo.Name,
			Email: input.UserInfo.Email,
			Phone: input.UserInfo.Phone,
		},
		Responses: normalized,
	}

	created, err := s.InsertOne(ctx, response)
	if err != nil {
		return zero, err
	}

	s.sendNotifications(ctx, &created, &set)
	return created, nil
}

// sendNotifications gửi mail thông báo cho admin tenant và người làm bài
func (s *UserResponseService) sendNotifications(ctx context.Context, response *models.UserResponse, set *models.QuestionSet) {
	if s.mail == nil {
		return
	}
	log := logger.GetAppLogger()

	if adminEmail := s.lookupTenantEmail(ctx, response.TenantToken); adminEmail != "" {
		body := fmt.Sprintf(
			"<p>%s (%s) vừa nộp một bài làm: %d/%d câu trả lời.</p>",
			response.UserInfo.Name, response.UserInfo.Email, len(response.Responses), len(set.Questions),
		)
		if err := s.mail.Send(adminEmail, "Có bài làm mới trên trang của bạn", body); err != nil {
			log.WithError(err).Warn("Không gửi được mail thông báo cho admin tenant")
		}
	}

	if response.UserInfo.Email != "" {
		body := fmt.Sprintf(
			"<p>Chào %s,</p><p>Chúng tôi đã nhận được %d câu trả lời của bạn. Cảm ơn bạn đã tham gia.</p>",
			response.UserInfo.Name, len(response.Responses),
		)
		if err := s.mail.Send(response.UserInfo.Email, "Đã nhận bài làm của bạn", body); err != nil {
			log.WithError(err).Warn("Không gửi được mail xác nhận cho người làm bài")
		}
	}
}

// lookupTenantEmail tra email của tài khoản tenant theo token scope
func (s *UserResponseService) lookupTenantEmail(ctx context.Context, tenantToken string) string {
	if s.accounts == nil {
		return ""
	}
	account, err := s.accounts.FindByTenantToken(ctx, tenantToken)
	if err != nil {
		return ""
	}
	return account.Email
}

// ListByTemplate liệt kê bài làm của một mẫu trang cho màn hình admin,
// đã enrich nội dung câu hỏi. Chỉ tenant sở hữu bộ câu hỏi mới xem được.
func (s *UserResponseService) ListByTemplate(ctx context.Context, templateID primitive.ObjectID, tenantToken string) ([]ResponseWithMeta, error) {
	set, err := s.questionSets.FindByTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if set.TenantToken != tenantToken {
		return nil, common.ErrNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	responses, err := s.Find(ctx, bson.M{"templateId": templateID, "tenantToken": tenantToken}, opts)
	if err != nil {
		return nil, err
	}

	result := make([]ResponseWithMeta, 0, len(responses))
	for _, r := range responses {
		result = append(result, ResponseWithMeta{
			ID:        r.ID,
			UserInfo:  r.UserInfo,
			Responses: EnrichAnswers(set.Questions, r.Responses),
			CreatedAt: r.CreatedAt,
		})
	}
	return result, nil
}
