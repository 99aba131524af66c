package utility

import (
	"testing"
)

func TestString2ObjectID(t *testing.T) {
	hex := "507f1f77bcf86cd799439011"
	id, err := String2ObjectID(hex)
	if err != nil {
		t.Fatalf("Chuỗi hex hợp lệ không được trả lỗi: %v", err)
	}
	if id.Hex() != hex {
		t.Errorf("ObjectID không khớp: %s != %s", id.Hex(), hex)
	}

	if _, err := String2ObjectID("khong-hop-le"); err == nil {
		t.Error("Chuỗi không phải hex phải trả lỗi")
	}
}

func TestToMap(t *testing.T) {
	type sample struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	m, err := ToMap(sample{Name: "abc", Count: 3})
	if err != nil {
		t.Fatalf("ToMap trả lỗi: %v", err)
	}
	if m["name"] != "abc" {
		t.Errorf("Key name không đúng: %v", m["name"])
	}
	// JSON number decode về float64
	if m["count"] != float64(3) {
		t.Errorf("Key count không đúng: %v", m["count"])
	}
}

func TestConvertStruct(t *testing.T) {
	type src struct {
		Name string `json:"name"`
	}
	type dst struct {
		Name string `json:"name"`
	}

	var target dst
	if _, err := ConvertStruct(src{Name: "abc"}, &target); err != nil {
		t.Fatalf("ConvertStruct trả lỗi: %v", err)
	}
	if target.Name != "abc" {
		t.Errorf("Field Name không được copy: %s", target.Name)
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") {
		t.Error("Contains phải tìm thấy phần tử có trong slice")
	}
	if Contains([]string{"a", "b"}, "c") {
		t.Error("Contains không được tìm thấy phần tử không có trong slice")
	}
	if Contains([]int{}, 1) {
		t.Error("Slice rỗng không chứa phần tử nào")
	}
}
