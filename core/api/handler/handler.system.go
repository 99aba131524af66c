package handler

import (
	"context"
	"time"

	"page_builder/core/global"

	fiber "github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SystemHandler phục vụ các endpoint hệ thống
type SystemHandler struct {
	BaseHandler
}

// NewSystemHandler tạo handler hệ thống
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth kiểm tra tình trạng service và kết nối MongoDB
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		status := fiber.Map{
			"service": "ok",
			"time":    time.Now().UnixMilli(),
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if global.MongoDB_Session != nil && global.MongoDB_Session.Ping(ctx, readpref.Primary()) == nil {
			status["mongodb"] = "ok"
		} else {
			status["mongodb"] = "down"
		}

		h.HandleResponse(c, status, nil)
		return nil
	})
}
