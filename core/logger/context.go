package logger

import (
	fiber "github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// Các key chuẩn dùng khi gắn thông tin request vào log entry
const (
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldTenantID  = "tenant_id"
)

// WithRequest trả về log entry đã gắn thông tin từ Fiber context.
// Dùng trong handler/middleware để mọi dòng log của một request có cùng request_id.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		FieldMethod: c.Method(),
		FieldPath:   c.Path(),
	})

	if requestID := c.Locals("requestid"); requestID != nil {
		entry = entry.WithField(FieldRequestID, requestID)
	}
	if tenantID := c.Locals("tenant_id"); tenantID != nil {
		entry = entry.WithField(FieldTenantID, tenantID)
	}

	return entry
}
