package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	assert.NoError(t, err)
	assert.True(t, isNew, "Lần đăng ký đầu phải là item mới")

	v, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, 1, v)

	// Ghi đè item cũ
	isNew, err = r.Register("a", 2)
	assert.NoError(t, err)
	assert.False(t, isNew, "Đăng ký trùng tên phải ghi đè, không phải item mới")

	v, _ = r.Get("a")
	assert.Equal(t, 2, v)
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.Register("", "x")
	assert.Error(t, err, "Tên rỗng phải bị từ chối")
}

func TestRegistry_GetKhongTonTai(t *testing.T) {
	r := NewRegistry[string]()
	_, exists := r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0

	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	v, err := r.GetOrCreate("k", creator)
	assert.NoError(t, err)
	assert.Equal(t, "created", v)

	// Lần hai trả về item đã có, không gọi lại creator
	v, err = r.GetOrCreate("k", creator)
	assert.NoError(t, err)
	assert.Equal(t, "created", v)
	assert.Equal(t, 1, calls, "Creator chỉ được gọi một lần")
}

func TestRegistry_GetOrCreateLoiCreator(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.GetOrCreate("k", func() (string, error) {
		return "", errors.New("boom")
	})
	assert.Error(t, err)

	_, exists := r.Get("k")
	assert.False(t, exists, "Item không được lưu khi creator lỗi")
}

func TestRegistry_ClearVaClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	cleaned := []int{}
	deleted, err := r.Clear("a", func(v int) error {
		cleaned = append(cleaned, v)
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []int{1}, cleaned)

	deleted, err = r.Clear("a", nil)
	assert.NoError(t, err)
	assert.False(t, deleted, "Xóa item không tồn tại phải trả về false")

	count, err := r.ClearAll(nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	_, exists := r.Get("b")
	assert.False(t, exists)
}
