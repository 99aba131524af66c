package services

import (
	"reflect"
	"testing"

	models "page_builder/core/api/models/mongodb"

	"github.com/stretchr/testify/assert"
)

type defaultsModel struct {
	Status  string `bson:"status" default:"draft"`
	Color   string `bson:"color" default:"#ffffff"`
	Version int64  `bson:"version" default:"1"`
	Active  bool   `bson:"active" default:"true"`
	NoTag   string `bson:"noTag"`
	Skipped string `bson:"-" default:"x"`
}

func TestApplyInsertDefaultsToModel(t *testing.T) {
	t.Run("Set field dang zero", func(t *testing.T) {
		m := defaultsModel{}
		applyInsertDefaultsToModel(&m)
		assert.Equal(t, "draft", m.Status)
		assert.Equal(t, "#ffffff", m.Color)
		assert.Equal(t, int64(1), m.Version)
		assert.True(t, m.Active)
		assert.Equal(t, "", m.NoTag)
		assert.Equal(t, "", m.Skipped, "Field bson:- không được áp default")
	})

	t.Run("Khong ghi de gia tri da co", func(t *testing.T) {
		m := defaultsModel{Status: "published", Version: 3}
		applyInsertDefaultsToModel(&m)
		assert.Equal(t, "published", m.Status)
		assert.Equal(t, int64(3), m.Version)
		assert.Equal(t, "#ffffff", m.Color, "Field zero khác vẫn được set default")
	})

	t.Run("Bo qua input khong phai con tro struct", func(t *testing.T) {
		assert.NotPanics(t, func() {
			applyInsertDefaultsToModel(nil)
			applyInsertDefaultsToModel("string")
			applyInsertDefaultsToModel(defaultsModel{})
		})
	})
}

func TestGetInsertDefaultsFromModelType(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(defaultsModel{}))
	assert.Equal(t, "draft", defaults["status"])
	assert.Equal(t, int64(1), defaults["version"])
	assert.Equal(t, true, defaults["active"])
	_, hasSkipped := defaults["-"]
	assert.False(t, hasSkipped)
}

func TestParseDefaultValue(t *testing.T) {
	assert.Equal(t, "draft", parseDefaultValue("draft", reflect.TypeOf("")))
	assert.Equal(t, int64(5), parseDefaultValue("5", reflect.TypeOf(int64(0))))
	assert.Equal(t, true, parseDefaultValue("true", reflect.TypeOf(false)))
	assert.Equal(t, false, parseDefaultValue("khong-phai-bool", reflect.TypeOf(false)))
	assert.Nil(t, parseDefaultValue("1.5", reflect.TypeOf(float64(0))), "Kiểu không hỗ trợ trả về nil")
}

func TestToUpdateData(t *testing.T) {
	t.Run("Giu nguyen UpdateData", func(t *testing.T) {
		in := &UpdateData{Set: map[string]interface{}{"a": 1}}
		out, err := ToUpdateData(in)
		assert.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("Map thuong wrap trong Set", func(t *testing.T) {
		out, err := ToUpdateData(map[string]interface{}{"name": "abc"})
		assert.NoError(t, err)
		assert.Equal(t, "abc", out.Set["name"])
	})

	t.Run("Map co operator Mongo", func(t *testing.T) {
		out, err := ToUpdateData(map[string]interface{}{
			"$set": map[string]interface{}{"name": "abc"},
			"$inc": map[string]interface{}{"version": 1},
		})
		assert.NoError(t, err)
		assert.Equal(t, "abc", out.Set["name"])
		assert.NotNil(t, out.Inc)
	})
}

func TestDefaultTagTrenModel(t *testing.T) {
	// Các model chính mang default tag khớp với giá trị hệ thống mong đợi
	tpl := models.Template{}
	applyInsertDefaultsToModel(&tpl)
	assert.Equal(t, models.TemplateStatusDraft, tpl.Status)

	doc := models.ContentDocument{}
	applyInsertDefaultsToModel(&doc)
	assert.Equal(t, "#ffffff", doc.BackgroundColor)
}
