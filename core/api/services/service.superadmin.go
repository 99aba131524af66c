package services

import (
	"context"
	"fmt"

	"page_builder/core/common"
	"page_builder/core/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TenantOverview là thống kê dữ liệu của một tenant
type TenantOverview struct {
	TenantToken      string `json:"tenantToken"`      // Token scope của tenant
	TenantName       string `json:"tenantName"`       // Tên tenant nếu tra được từ tài khoản
	Templates        int64  `json:"templates"`        // Số mẫu trang
	ContentDocuments int64  `json:"contentDocuments"` // Số trang nội dung
	QuestionSets     int64  `json:"questionSets"`     // Số bộ câu hỏi
	UserResponses    int64  `json:"userResponses"`    // Số bài làm
}

// SuperadminService cung cấp thống kê cross-tenant cho console quản trị
type SuperadminService struct {
	accounts *TenantAccountService
}

// NewSuperadminService tạo service thống kê
func NewSuperadminService(accounts *TenantAccountService) *SuperadminService {
	return &SuperadminService{accounts: accounts}
}

// countByTenant đếm số document theo tenantToken trong một collection
func countByTenant(ctx context.Context, col *mongo.Collection) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$tenantToken",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	result := map[string]int64{}
	for cursor.Next(ctx) {
		var row struct {
			ID    *string `bson:"_id"`
			Count int64   `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		key := ""
		if row.ID != nil {
			key = *row.ID
		}
		result[key] = row.Count
	}
	return result, nil
}

// Overview trả về thống kê số mẫu, trang, bộ câu hỏi và bài làm của từng
// tenant. Document không có tenantToken (mẫu dùng chung) được gom vào key rỗng.
func (s *SuperadminService) Overview(ctx context.Context) ([]TenantOverview, error) {
	type source struct {
		name   string
		assign func(*TenantOverview, int64)
	}
	sources := []source{
		{global.MongoDB_ColNames.Templates, func(o *TenantOverview, n int64) { o.Templates = n }},
		{global.MongoDB_ColNames.ContentDocuments, func(o *TenantOverview, n int64) { o.ContentDocuments = n }},
		{global.MongoDB_ColNames.QuestionSets, func(o *TenantOverview, n int64) { o.QuestionSets = n }},
		{global.MongoDB_ColNames.UserResponses, func(o *TenantOverview, n int64) { o.UserResponses = n }},
	}

	byTenant := map[string]*TenantOverview{}
	for _, src := range sources {
		col := global.GetCollection(src.name)
		if col == nil {
			return nil, fmt.Errorf("collection %s chưa được khởi tạo", src.name)
		}
		counts, err := countByTenant(ctx, col)
		if err != nil {
			return nil, err
		}
		for token, n := range counts {
			overview, ok := byTenant[token]
			if !ok {
				overview = &TenantOverview{TenantToken: token}
				byTenant[token] = overview
			}
			src.assign(overview, n)
		}
	}

	result := make([]TenantOverview, 0, len(byTenant))
	for token, overview := range byTenant {
		if token != "" && s.accounts != nil {
			if account, err := s.accounts.FindByTenantToken(ctx, token); err == nil {
				overview.TenantName = account.Name
			}
		}
		result = append(result, *overview)
	}
	return result, nil
}
