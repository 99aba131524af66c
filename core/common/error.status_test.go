package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_NilTraVeNil(t *testing.T) {
	if err := ConvertMongoError(nil); err != nil {
		t.Errorf("ConvertMongoError(nil) phải trả về nil, nhận được: %v", err)
	}
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("mongo.ErrNoDocuments phải được chuyển thành ErrNotFound, nhận được: %v", err)
	}
	appErr, ok := err.(*Error)
	if !ok {
		t.Fatal("Lỗi trả về phải có kiểu *Error")
	}
	if appErr.StatusCode != StatusNotFound {
		t.Errorf("StatusCode phải là %d, nhận được %d", StatusNotFound, appErr.StatusCode)
	}
}

func TestConvertMongoError_GiuNguyenLoiHeThong(t *testing.T) {
	// Lỗi đã được phân loại sẵn không bị convert lại
	err := ConvertMongoError(ErrTemplateNotFound)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Lỗi hệ thống phải được giữ nguyên, nhận được: %v", err)
	}

	wrapped := fmt.Errorf("tra cứu mẫu: %w", ErrQuestionSetExists)
	err = ConvertMongoError(wrapped)
	if !errors.Is(err, ErrQuestionSetExists) {
		t.Errorf("Lỗi hệ thống bị wrap phải được giữ nguyên, nhận được: %v", err)
	}
}

func TestConvertMongoError_CommandError(t *testing.T) {
	cmdErr := mongo.CommandError{Code: 11, Message: "query failed"}
	err := ConvertMongoError(cmdErr)
	appErr, ok := err.(*Error)
	if !ok {
		t.Fatal("Lỗi trả về phải có kiểu *Error")
	}
	if appErr.Code.Code != ErrCodeDatabaseQuery.Code {
		t.Errorf("CommandError phải mang mã %s, nhận được %s", ErrCodeDatabaseQuery.Code, appErr.Code.Code)
	}
	if appErr.Details != "query failed" {
		t.Errorf("Details phải chứa message gốc, nhận được: %v", appErr.Details)
	}
}

func TestConvertMongoError_LoiKhongNhanDien(t *testing.T) {
	err := ConvertMongoError(errors.New("something odd"))
	appErr, ok := err.(*Error)
	if !ok {
		t.Fatal("Lỗi trả về phải có kiểu *Error")
	}
	if appErr.Code.Code != ErrCodeDatabase.Code {
		t.Errorf("Lỗi không nhận diện được phải mang mã %s, nhận được %s", ErrCodeDatabase.Code, appErr.Code.Code)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode phải là 500, nhận được %d", appErr.StatusCode)
	}
}

func TestError_Is(t *testing.T) {
	if !errors.Is(ErrNotFound, ErrNotFound) {
		t.Error("errors.Is phải khớp chính nó")
	}
	if errors.Is(ErrNotFound, ErrDuplicate) {
		t.Error("ErrNotFound không được khớp ErrDuplicate")
	}

	// Cùng mã nhưng message khác thì không khớp
	other := NewError(ErrCodeDatabaseQuery, "message khác", StatusNotFound, nil)
	if errors.Is(other, ErrNotFound) {
		t.Error("Lỗi cùng mã nhưng khác message không được coi là khớp")
	}
}
