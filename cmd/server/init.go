package main

import (
	"context"

	"page_builder/config"
	mongodb "page_builder/core/api/models/mongodb"
	"page_builder/core/database"
	"page_builder/core/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitGlobal khởi tạo các biến toàn cục của ứng dụng
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initColNames gán tên chuẩn cho các collection
func initColNames() {
	global.InitColNames()
	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator dùng chung
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig đọc cấu hình server từ env
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối MongoDB, đảm bảo collection và index
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.Connect(global.ServerConfig.MongoDB_ConnectionURI)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Templates), mongodb.Template{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ContentDocuments), mongodb.ContentDocument{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.QuestionSets), mongodb.QuestionSet{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.UserResponses), mongodb.UserResponse{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.TenantAccounts), mongodb.TenantAccount{})
}

// InitRegistry đăng ký các collections vào registry toàn cục
func InitRegistry() {
	if err := initCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// initCollections đăng ký từng collection MongoDB vào RegistryCollections
func initCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Templates,
		global.MongoDB_ColNames.ContentDocuments,
		global.MongoDB_ColNames.QuestionSets,
		global.MongoDB_ColNames.UserResponses,
		global.MongoDB_ColNames.TenantAccounts,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
