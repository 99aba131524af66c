// Package payment khởi tạo phiên thanh toán Stripe Checkout cho nút CTA
// của bố cục payment.
package payment

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"page_builder/core/common"

	"github.com/valyala/fasthttp"
)

// CheckoutInput là thông tin cần để tạo một phiên thanh toán
type CheckoutInput struct {
	ProductName string // Tên hiển thị trên trang thanh toán
	Amount      int64  // Số tiền, đơn vị nhỏ nhất của currency (cent, đồng)
	Currency    string // Mã tiền tệ, ví dụ usd, vnd
	Quantity    int64  // Số lượng, mặc định 1
}

// CheckoutSession là kết quả trả về cho client để redirect
type CheckoutSession struct {
	ID  string `json:"id"`  // ID phiên thanh toán
	URL string `json:"url"` // URL trang thanh toán của Stripe
}

// StripeClient gọi Stripe API bằng secret key
type StripeClient struct {
	SecretKey  string           // Secret key của tài khoản Stripe
	SuccessURL string           // URL redirect khi thanh toán thành công
	CancelURL  string           // URL redirect khi hủy thanh toán
	Client     *fasthttp.Client // HTTP client dùng chung
}

// NewStripeClient tạo client với timeout 30 giây
func NewStripeClient(secretKey, successURL, cancelURL string) *StripeClient {
	return &StripeClient{
		SecretKey:  secretKey,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		Client: &fasthttp.Client{
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// CreateCheckoutSession tạo một Checkout Session trên Stripe.
// Stripe nhận body dạng form-encoded, không phải JSON.
func (c *StripeClient) CreateCheckoutSession(input CheckoutInput) (*CheckoutSession, error) {
	if input.Quantity <= 0 {
		input.Quantity = 1
	}
	if input.Currency == "" {
		input.Currency = "usd"
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.SuccessURL)
	form.Set("cancel_url", c.CancelURL)
	form.Set("line_items[0][price_data][currency]", input.Currency)
	form.Set("line_items[0][price_data][product_data][name]", input.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(input.Amount, 10))
	form.Set("line_items[0][quantity]", strconv.FormatInt(input.Quantity, 10))

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("https://api.stripe.com/v1/checkout/sessions")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.SetBodyString(form.Encode())

	if err := c.Client.Do(req, resp); err != nil {
		return nil, common.NewError(common.ErrCodeExternalPayment, "Không kết nối được tới Stripe", common.StatusBadGateway, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		var stripeErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.Unmarshal(resp.Body(), &stripeErr)
		return nil, common.NewError(common.ErrCodeExternalPayment,
			fmt.Sprintf("Stripe từ chối yêu cầu: %s", stripeErr.Error.Message),
			common.StatusBadGateway, nil)
	}

	var session CheckoutSession
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, common.ErrPaymentCreate
	}
	return &session, nil
}
