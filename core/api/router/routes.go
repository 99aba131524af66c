// Package router đăng ký toàn bộ route của API.
package router

import (
	"page_builder/core/api/handler"
	"page_builder/core/api/middleware"

	fiber "github.com/gofiber/fiber/v3"
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo prefix mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Handlers gom toàn bộ handler của ứng dụng để đăng ký route
type Handlers struct {
	System      *handler.SystemHandler
	Auth        *handler.AuthHandler
	Template    *handler.TemplateHandler
	Content     *handler.ContentHandler
	QuestionSet *handler.QuestionSetHandler
	Response    *handler.UserResponseHandler
	Layout      *handler.LayoutHandler
	Superadmin  *handler.SuperadminHandler
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// registerRouteWithMiddleware đăng ký route với middleware qua .Use() trên group.
// Lưu ý Fiber v3: middleware truyền trực tiếp trong router.Get(path, mw, handler)
// sẽ KHÔNG được gọi, bắt buộc phải đăng ký qua group.Use().
func registerRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, h fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, h)
	case "POST":
		routeGroup.Post(path, h)
	case "PUT":
		routeGroup.Put(path, h)
	case "DELETE":
		routeGroup.Delete(path, h)
	}
}

// SetupRoutes đăng ký toàn bộ route của ứng dụng dưới /api/v1
func (r *Router) SetupRoutes(h *Handlers, authMgr *middleware.AuthManager) {
	prefix := NewRoutePrefix()
	v1 := r.app.Group(prefix.V1)

	auth := authMgr.RequireAuth()
	none := []fiber.Handler{}
	authed := []fiber.Handler{auth}

	// System
	registerRouteWithMiddleware(v1, "/system", "GET", "/health", none, h.System.HandleHealth)

	// Auth
	registerRouteWithMiddleware(v1, "/auth", "POST", "/register", none, h.Auth.HandleRegister)
	registerRouteWithMiddleware(v1, "/auth", "POST", "/login", none, h.Auth.HandleLogin)
	registerRouteWithMiddleware(v1, "/auth", "GET", "/me", authed, h.Auth.HandleProfile)

	// Templates
	registerRouteWithMiddleware(v1, "/templates", "POST", "/", authed, h.Template.HandleCreate)
	registerRouteWithMiddleware(v1, "/templates", "GET", "/", authed, h.Template.HandleList)
	registerRouteWithMiddleware(v1, "/templates", "GET", "/:id", authed, h.Template.HandleFindById)
	registerRouteWithMiddleware(v1, "/templates", "PUT", "/:id", authed, h.Template.HandleUpdate)
	registerRouteWithMiddleware(v1, "/templates", "DELETE", "/:id", authed, h.Template.HandleDelete)

	// Content documents
	registerRouteWithMiddleware(v1, "/content", "POST", "/", authed, h.Content.HandleCreate)
	registerRouteWithMiddleware(v1, "/content", "GET", "/", authed, h.Content.HandleListByTenant)
	registerRouteWithMiddleware(v1, "/content", "GET", "/by-user/:userId", authed, h.Content.HandleListByCreator)
	registerRouteWithMiddleware(v1, "/content", "GET", "/:id", authed, h.Content.HandleFindById)
	registerRouteWithMiddleware(v1, "/content", "PUT", "/:id", authed, h.Content.HandleUpdate)
	registerRouteWithMiddleware(v1, "/content", "DELETE", "/:id", authed, h.Content.HandleDelete)

	// Route public cho người xem landing page (không đăng nhập): render trang,
	// lấy câu hỏi, nộp bài làm và tạo phiên thanh toán. Phải đăng ký TRƯỚC các
	// route authed cùng prefix, vì group.Use(auth) áp cho mọi route khai báo sau nó.
	registerRouteWithMiddleware(v1, "/layout", "GET", "/render/:id", none, h.Layout.HandleRender)
	registerRouteWithMiddleware(v1, "/layout", "POST", "/checkout", none, h.Layout.HandleCreateCheckout)
	registerRouteWithMiddleware(v1, "/question-sets", "GET", "/by-template/:templateId", none, h.QuestionSet.HandleFindByTemplate)
	registerRouteWithMiddleware(v1, "/responses", "POST", "/", none, h.Response.HandleCreate)

	// Question sets (quản trị)
	registerRouteWithMiddleware(v1, "/question-sets", "POST", "/", authed, h.QuestionSet.HandleCreate)
	registerRouteWithMiddleware(v1, "/question-sets", "PUT", "/:id", authed, h.QuestionSet.HandleUpdate)
	registerRouteWithMiddleware(v1, "/question-sets", "DELETE", "/:id", authed, h.QuestionSet.HandleDelete)

	// User responses (quản trị)
	registerRouteWithMiddleware(v1, "/responses", "GET", "/by-template/:templateId", authed, h.Response.HandleListByTemplate)

	// Layout keys (quản trị, dùng cho builder)
	registerRouteWithMiddleware(v1, "/layout", "GET", "/keys", authed, h.Layout.HandleLayoutKeys)

	// Superadmin console
	registerRouteWithMiddleware(v1, "/superadmin", "GET", "/overview", authed, h.Superadmin.HandleOverview)
}
