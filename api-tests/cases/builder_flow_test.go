package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"page_builder_tests/utils"

	"github.com/stretchr/testify/assert"
)

// waitForHealth chờ server sẵn sàng trước khi chạy test
func waitForHealth(baseURL string, attempts int, delay time.Duration, t *testing.T) {
	client := utils.NewHTTPClient(baseURL, 5)
	for i := 0; i < attempts; i++ {
		resp, _, err := client.GET("/system/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			return
		}
		time.Sleep(delay)
	}
	t.Fatalf("❌ Server chưa sẵn sàng tại %s sau %d lần thử", baseURL, attempts)
}

// parseData parse envelope {code, message, data, status} và trả về data
func parseData(t *testing.T, body []byte) map[string]interface{} {
	var result map[string]interface{}
	err := json.Unmarshal(body, &result)
	assert.NoError(t, err, "Phải parse được JSON response")
	assert.Equal(t, "success", result["status"], "Status phải là success, body: %s", string(body))
	data, _ := result["data"].(map[string]interface{})
	return data
}

// TestBuilderFlow chạy luồng đầy đủ của builder: đăng ký tài khoản, tạo mẫu,
// tạo trang nội dung, tạo bộ câu hỏi, người xem ẩn danh nộp bài làm, rồi kiểm
// tra hành vi xóa (không cascade sang bài làm, listing loại trang có mẫu đã xóa).
func TestBuilderFlow(t *testing.T) {
	baseURL := "http://localhost:8080/api/v1"
	waitForHealth(baseURL, 10, 1*time.Second, t)

	client := utils.NewHTTPClient(baseURL, 10)
	visitor := utils.NewHTTPClient(baseURL, 10)

	var accountID, templateID, contentID string

	t.Run("🔑 Đăng ký tài khoản tenant", func(t *testing.T) {
		payload := map[string]interface{}{
			"name":     "Tenant Test",
			"email":    fmt.Sprintf("tenant%d@example.com", time.Now().UnixNano()),
			"password": "matkhau-rat-dai",
		}
		resp, body, err := client.POST("/auth/register", payload)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đăng ký: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

		data := parseData(t, body)
		token, _ := data["token"].(string)
		assert.NotEmpty(t, token, "Đăng ký phải trả về JWT")
		assert.NotEmpty(t, data["tenantToken"], "Đăng ký phải trả về tenantToken")
		accountID, _ = data["id"].(string)
		client.SetToken(token)
		fmt.Printf("✅ Đăng ký thành công, ID: %s\n", accountID)
	})

	t.Run("📐 Tạo mẫu trang", func(t *testing.T) {
		payload := map[string]interface{}{
			"name":      fmt.Sprintf("Landing %d", time.Now().UnixNano()),
			"layoutKey": "landing",
			"sections": []map[string]interface{}{
				{"id": "s1", "title": "Giới thiệu", "type": "text", "required": true},
				{"id": "s2", "title": "Liên kết", "type": "link"},
			},
		}
		resp, body, err := client.POST("/templates/", payload)
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo mẫu: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

		data := parseData(t, body)
		templateID, _ = data["id"].(string)
		assert.NotEmpty(t, templateID)
		fmt.Printf("✅ Tạo mẫu thành công, ID: %s\n", templateID)
	})

	t.Run("📄 Tạo trang nội dung rồi đọc lại", func(t *testing.T) {
		if templateID == "" {
			t.Skip("Skipping: Chưa có template ID")
		}

		fields := map[string]string{
			"templateId": templateID,
			"userId":     accountID,
			"heading":    "Trang thử nghiệm",
			"s1":         "hello",
			"s2":         "https://example.com",
		}
		resp, body, err := client.PostMultipart("/content/", fields, nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo trang nội dung: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		data := parseData(t, body)
		contentID, _ = data["id"].(string)
		assert.NotEmpty(t, contentID)

		// Đọc lại và kiểm tra giá trị section đã lưu
		resp, body, err = client.GET("/content/" + contentID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc trang nội dung: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		data = parseData(t, body)

		sections, _ := data["sections"].(map[string]interface{})
		s1, _ := sections["s1"].(map[string]interface{})
		assert.Equal(t, "hello", s1["value"], "Giá trị section text phải được giữ nguyên qua round-trip")
		fmt.Printf("✅ Round-trip trang nội dung thành công, ID: %s\n", contentID)
	})

	t.Run("❓ Tạo bộ câu hỏi cho mẫu", func(t *testing.T) {
		if templateID == "" {
			t.Skip("Skipping: Chưa có template ID")
		}
		payload := map[string]interface{}{
			"templateId": templateID,
			"userId":     accountID,
			"questions": []map[string]interface{}{
				{
					"questionText": "Bạn biết đến chúng tôi qua đâu?",
					"required":     true,
					"options": []map[string]interface{}{
						{"text": "Mạng xã hội", "isCorrect": true},
						{"text": "Bạn bè giới thiệu"},
					},
				},
			},
		}
		resp, body, err := client.POST("/question-sets/", payload)
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo bộ câu hỏi: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		parseData(t, body)
		fmt.Printf("✅ Tạo bộ câu hỏi thành công\n")
	})

	t.Run("👀 Người xem ẩn danh render trang và nộp bài làm", func(t *testing.T) {
		if contentID == "" || templateID == "" {
			t.Skip("Skipping: Chưa có content/template ID")
		}

		// visitor không set token: toàn bộ luồng người xem phải chạy không cần đăng nhập
		resp, body, err := visitor.GET("/layout/render/" + contentID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi render trang: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "Render phải public, body: %s", string(body))
		renderData := parseData(t, body)
		assert.Equal(t, "landing", renderData["layoutKey"])

		resp, body, err = visitor.GET("/question-sets/by-template/" + templateID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi lấy bộ câu hỏi: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "Lấy câu hỏi phải public, body: %s", string(body))

		payload := map[string]interface{}{
			"templateId": templateID,
			"userInfo": map[string]interface{}{
				"name":  "Người Xem",
				"email": "nguoixem@example.com",
			},
			"responses": []map[string]interface{}{
				{"selectedOption": "a"},
			},
		}
		resp, body, err = visitor.POST("/responses/", payload)
		if err != nil {
			t.Fatalf("❌ Lỗi khi nộp bài làm: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "Nộp bài làm phải public, body: %s", string(body))
		data := parseData(t, body)
		assert.NotEmpty(t, data["id"])
		fmt.Printf("✅ Luồng người xem ẩn danh chạy thành công\n")
	})

	t.Run("🗑️ Xóa trang không cascade sang bài làm", func(t *testing.T) {
		if contentID == "" || templateID == "" {
			t.Skip("Skipping: Chưa có content/template ID")
		}

		resp, body, err := client.DELETE("/content/" + contentID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi xóa trang nội dung: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

		// Bài làm đã nộp vẫn còn sau khi xóa trang
		resp, body, err = client.GET("/responses/by-template/" + templateID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi liệt kê bài làm: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

		var result map[string]interface{}
		assert.NoError(t, json.Unmarshal(body, &result))
		responses, _ := result["data"].([]interface{})
		assert.NotEmpty(t, responses, "Bài làm phải còn nguyên sau khi xóa trang nội dung")
		fmt.Printf("✅ Bài làm không bị cascade khi xóa trang\n")
	})

	t.Run("🪦 Listing loại trang có mẫu đã xóa", func(t *testing.T) {
		if templateID == "" {
			t.Skip("Skipping: Chưa có template ID")
		}

		// Tạo thêm một trang mới trên mẫu rồi mới xóa mẫu
		fields := map[string]string{
			"templateId": templateID,
			"userId":     accountID,
			"s1":         "trang sắp mồ côi",
		}
		resp, body, err := client.PostMultipart("/content/", fields, nil)
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo trang nội dung: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		orphan := parseData(t, body)
		orphanID, _ := orphan["id"].(string)

		resp, body, err = client.DELETE("/templates/" + templateID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi xóa mẫu: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

		resp, body, err = client.GET("/content/")
		if err != nil {
			t.Fatalf("❌ Lỗi khi liệt kê trang nội dung: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

		var result map[string]interface{}
		assert.NoError(t, json.Unmarshal(body, &result))
		items, _ := result["data"].([]interface{})
		for _, item := range items {
			doc, _ := item.(map[string]interface{})
			assert.NotEqual(t, orphanID, doc["id"], "Trang có mẫu đã xóa phải bị loại khỏi listing")
		}
		fmt.Printf("✅ Listing đã loại trang có mẫu bị xóa\n")
	})

	fmt.Printf("\n✅ Hoàn thành test luồng builder\n")
}
