package handler

import (
	"page_builder/core/api/services"
	"page_builder/core/layout"
	"page_builder/core/payment"

	fiber "github.com/gofiber/fiber/v3"
)

// LayoutHandler dựng RenderPlan cho trang nội dung và phục vụ nút thanh toán
// của bố cục payment.
type LayoutHandler struct {
	BaseHandler
	contents     *services.ContentService
	templates    *services.TemplateService
	questionSets *services.QuestionSetService
	stripe       *payment.StripeClient
}

// NewLayoutHandler tạo handler render
func NewLayoutHandler(
	contents *services.ContentService,
	templates *services.TemplateService,
	questionSets *services.QuestionSetService,
	stripe *payment.StripeClient,
) *LayoutHandler {
	return &LayoutHandler{
		contents:     contents,
		templates:    templates,
		questionSets: questionSets,
		stripe:       stripe,
	}
}

// HandleLayoutKeys trả về danh sách layout key được hỗ trợ
func (h *LayoutHandler) HandleLayoutKeys(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, layout.ValidLayoutKeys(), nil)
		return nil
	})
}

// HandleRender trả về RenderPlan của một trang nội dung: bố cục, section đã
// gán slot và cờ hiện popup câu hỏi. Endpoint public cho người xem landing
// page: scope tenant suy ra từ chính trang được render, không từ đăng nhập.
func (h *LayoutHandler) HandleRender(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		doc, err := h.contents.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tpl, err := h.templates.FindByIdScoped(c.Context(), doc.TemplateID, doc.TenantToken)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		hasQuestionSet, err := h.questionSets.ExistsForTemplate(c.Context(), tpl.ID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		plan := layout.AssembleRenderPlan(&tpl, &doc, hasQuestionSet)
		h.HandleResponse(c, plan, nil)
		return nil
	})
}

// checkoutInput là payload tạo phiên thanh toán cho nút CTA của bố cục payment
type checkoutInput struct {
	ProductName string `json:"productName" validate:"required"`  // Tên hiển thị trên trang thanh toán
	Amount      int64  `json:"amount" validate:"required,min=1"` // Số tiền, đơn vị nhỏ nhất của currency
	Currency    string `json:"currency,omitempty"`               // Mã tiền tệ, mặc định usd
	Quantity    int64  `json:"quantity,omitempty"`               // Số lượng, mặc định 1
}

// HandleCreateCheckout tạo phiên Stripe Checkout và trả về URL redirect
func (h *LayoutHandler) HandleCreateCheckout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(checkoutInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		session, err := h.stripe.CreateCheckoutSession(payment.CheckoutInput{
			ProductName: input.ProductName,
			Amount:      input.Amount,
			Currency:    input.Currency,
			Quantity:    input.Quantity,
		})
		h.HandleResponse(c, session, err)
		return nil
	})
}
