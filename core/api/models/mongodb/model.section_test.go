package models

import "testing"

func TestIsValidSectionType(t *testing.T) {
	for _, typ := range []string{SectionTypeText, SectionTypeImage, SectionTypeVideo, SectionTypeFile, SectionTypeLink} {
		if !IsValidSectionType(typ) {
			t.Errorf("Loại %s phải hợp lệ", typ)
		}
	}
	if IsValidSectionType("audio") {
		t.Error("Loại audio không được hỗ trợ")
	}
	if IsValidSectionType("") {
		t.Error("Loại rỗng không được hỗ trợ")
	}
}

func TestDefaultSectionConfig_TheoLoai(t *testing.T) {
	text := DefaultSectionConfig(SectionTypeText)
	if text["maxLength"] != 500 {
		t.Errorf("maxLength mặc định của text phải là 500, nhận được %v", text["maxLength"])
	}

	image := DefaultSectionConfig(SectionTypeImage)
	if image["maxSize"] != 5242880 {
		t.Errorf("maxSize mặc định của image phải là 5242880, nhận được %v", image["maxSize"])
	}

	link := DefaultSectionConfig(SectionTypeLink)
	if link["placeholder"] != "https://" {
		t.Errorf("placeholder mặc định của link phải là https://, nhận được %v", link["placeholder"])
	}

	unknown := DefaultSectionConfig("audio")
	if len(unknown) != 0 {
		t.Errorf("Loại không tồn tại phải trả về map rỗng, nhận được %v", unknown)
	}
}

func TestDefaultSectionConfig_TraVeBanCopy(t *testing.T) {
	first := DefaultSectionConfig(SectionTypeText)
	first["maxLength"] = 9999

	second := DefaultSectionConfig(SectionTypeText)
	if second["maxLength"] != 500 {
		t.Error("Sửa config trả về không được làm thay đổi config mặc định")
	}
}

func TestIsUploadType(t *testing.T) {
	for _, typ := range []string{SectionTypeImage, SectionTypeVideo, SectionTypeFile} {
		if !IsUploadType(typ) {
			t.Errorf("Loại %s phải nhận file tải lên", typ)
		}
	}
	if IsUploadType(SectionTypeText) || IsUploadType(SectionTypeLink) {
		t.Error("text và link không nhận file tải lên")
	}
}
