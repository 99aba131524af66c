package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"page_builder/core/api/handler"
	"page_builder/core/api/middleware"
	"page_builder/core/api/router"
	"page_builder/core/api/services"
	"page_builder/core/global"
	"page_builder/core/logger"
	"page_builder/core/mailer"
	"page_builder/core/media"
	"page_builder/core/payment"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// buildHandlers khởi tạo toàn bộ service và handler của ứng dụng
func buildHandlers() (*router.Handlers, *middleware.AuthManager) {
	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	accounts, err := services.NewTenantAccountService(cfg.JwtSecret)
	if err != nil {
		log.Fatalf("Failed to create tenant account service: %v", err)
	}

	templates, err := services.NewTemplateService()
	if err != nil {
		log.Fatalf("Failed to create template service: %v", err)
	}

	uploader := media.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)
	contents, err := services.NewContentService(templates, accounts, uploader)
	if err != nil {
		log.Fatalf("Failed to create content service: %v", err)
	}

	questionSets, err := services.NewQuestionSetService(templates)
	if err != nil {
		log.Fatalf("Failed to create question set service: %v", err)
	}

	mail := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPFromName)
	responses, err := services.NewUserResponseService(questionSets, accounts, mail)
	if err != nil {
		log.Fatalf("Failed to create user response service: %v", err)
	}

	superadmin := services.NewSuperadminService(accounts)
	stripe := payment.NewStripeClient(cfg.StripeSecretKey, cfg.StripeSuccessURL, cfg.StripeCancelURL)

	handlers := &router.Handlers{
		System:      handler.NewSystemHandler(),
		Auth:        handler.NewAuthHandler(accounts),
		Template:    handler.NewTemplateHandler(templates),
		Content:     handler.NewContentHandler(contents),
		QuestionSet: handler.NewQuestionSetHandler(questionSets),
		Response:    handler.NewUserResponseHandler(responses),
		Layout:      handler.NewLayoutHandler(contents, templates, questionSets, stripe),
		Superadmin:  handler.NewSuperadminHandler(superadmin),
	}

	return handlers, middleware.NewAuthManager(accounts)
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	// Đăng ký route sau khi middleware stack đã gắn vào app
	handlers, authMgr := buildHandlers()
	router.NewRouter(app).SetupRoutes(handlers, authMgr)

	cfg := global.ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper function để resolve đường dẫn tương đối từ thư mục gốc dự án
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	// Kiểm tra xem có bật TLS không
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Chạy Fiber server trên main thread
	main_thread()
}
