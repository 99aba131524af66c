// Package media đẩy file người dùng tải lên sang Cloudinary và trả về secure URL.
package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"page_builder/core/common"

	"github.com/valyala/fasthttp"
)

// Uploader đẩy file lên một dịch vụ lưu trữ media
type Uploader interface {
	Upload(filename string, content io.Reader) (string, error)
}

// CloudinaryUploader upload file theo cơ chế unsigned upload preset của Cloudinary
type CloudinaryUploader struct {
	CloudName    string           // Tên cloud trên Cloudinary
	UploadPreset string           // Unsigned upload preset
	Client       *fasthttp.Client // HTTP client, dùng chung cho mọi request
}

// NewCloudinaryUploader tạo uploader với timeout đọc/ghi 60 giây cho file lớn
func NewCloudinaryUploader(cloudName, uploadPreset string) *CloudinaryUploader {
	return &CloudinaryUploader{
		CloudName:    cloudName,
		UploadPreset: uploadPreset,
		Client: &fasthttp.Client{
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
	}
}

// cloudinaryUploadResponse là phần cần dùng trong response của Cloudinary
type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload gửi file lên Cloudinary và trả về secure URL.
// Dùng resource type "auto" để Cloudinary tự nhận diện ảnh, video hay raw file.
func (u *CloudinaryUploader) Upload(filename string, content io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", common.ErrMediaUpload
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", common.ErrMediaUpload
	}
	if err := writer.WriteField("upload_preset", u.UploadPreset); err != nil {
		return "", common.ErrMediaUpload
	}
	if err := writer.Close(); err != nil {
		return "", common.ErrMediaUpload
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload", u.CloudName))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(writer.FormDataContentType())
	req.SetBody(body.Bytes())

	if err := u.Client.Do(req, resp); err != nil {
		return "", common.NewError(common.ErrCodeExternalMedia, "Không kết nối được tới dịch vụ media", common.StatusBadGateway, err)
	}

	var result cloudinaryUploadResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", common.ErrMediaUpload
	}

	if resp.StatusCode() != fasthttp.StatusOK || result.SecureURL == "" {
		return "", common.NewError(common.ErrCodeExternalMedia, "Tải media lên thất bại", common.StatusBadGateway, result.Error.Message)
	}

	return result.SecureURL, nil
}
