// Package utils chứa HTTP client dùng chung cho các test case API.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// HTTPClient là client gọi API trong test, tự gắn bearer token nếu có
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient tạo client với timeout tính bằng giây
func NewHTTPClient(baseURL string, timeoutSeconds int) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	}
}

// SetToken đặt bearer token cho các request tiếp theo
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// ClearToken bỏ bearer token, dùng cho các request ẩn danh
func (c *HTTPClient) ClearToken() {
	c.token = ""
}

// do thực hiện request và đọc toàn bộ body
func (c *HTTPClient) do(method, path string, body io.Reader, contentType string) (*http.Response, []byte, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, data, nil
}

// GET gửi request GET
func (c *HTTPClient) GET(path string) (*http.Response, []byte, error) {
	return c.do(http.MethodGet, path, nil, "")
}

// POST gửi request POST với payload JSON
func (c *HTTPClient) POST(path string, payload interface{}) (*http.Response, []byte, error) {
	body, contentType, err := encodeJSON(payload)
	if err != nil {
		return nil, nil, err
	}
	return c.do(http.MethodPost, path, body, contentType)
}

// PUT gửi request PUT với payload JSON
func (c *HTTPClient) PUT(path string, payload interface{}) (*http.Response, []byte, error) {
	body, contentType, err := encodeJSON(payload)
	if err != nil {
		return nil, nil, err
	}
	return c.do(http.MethodPut, path, body, contentType)
}

// DELETE gửi request DELETE
func (c *HTTPClient) DELETE(path string) (*http.Response, []byte, error) {
	return c.do(http.MethodDelete, path, nil, "")
}

// PostMultipart gửi request POST dạng multipart/form-data: fields là các form
// value, files ánh xạ field name sang (tên file, nội dung).
func (c *HTTPClient) PostMultipart(path string, fields map[string]string, files map[string][2]string) (*http.Response, []byte, error) {
	return c.multipart(http.MethodPost, path, fields, files)
}

// PutMultipart gửi request PUT dạng multipart/form-data
func (c *HTTPClient) PutMultipart(path string, fields map[string]string, files map[string][2]string) (*http.Response, []byte, error) {
	return c.multipart(http.MethodPut, path, fields, files)
}

func (c *HTTPClient) multipart(method, path string, fields map[string]string, files map[string][2]string) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, nil, err
		}
	}
	for name, file := range files {
		part, err := writer.CreateFormFile(name, file[0])
		if err != nil {
			return nil, nil, err
		}
		if _, err := part.Write([]byte(file[1])); err != nil {
			return nil, nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, nil, err
	}

	return c.do(method, path, &buf, writer.FormDataContentType())
}

func encodeJSON(payload interface{}) (io.Reader, string, error) {
	if payload == nil {
		return nil, "application/json", nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("không marshal được payload: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}
