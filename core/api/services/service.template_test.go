package services

import (
	"testing"

	"page_builder/core/api/dto"
	models "page_builder/core/api/models/mongodb"
	"page_builder/core/common"

	"github.com/stretchr/testify/assert"
)

func TestBuildSections(t *testing.T) {
	t.Run("Sinh ID khi client khong gui", func(t *testing.T) {
		sections, err := BuildSections([]dto.SectionDefinitionInput{
			{Title: "Giới thiệu", Type: models.SectionTypeText},
		})
		assert.NoError(t, err)
		assert.Len(t, sections, 1)
		assert.NotEmpty(t, sections[0].ID, "ID phải được sinh tự động")
	})

	t.Run("Giu ID client gui len", func(t *testing.T) {
		sections, err := BuildSections([]dto.SectionDefinitionInput{
			{ID: "sec-1", Title: "Giới thiệu", Type: models.SectionTypeText},
		})
		assert.NoError(t, err)
		assert.Equal(t, "sec-1", sections[0].ID)
	})

	t.Run("Seed config mac dinh theo loai", func(t *testing.T) {
		sections, err := BuildSections([]dto.SectionDefinitionInput{
			{Title: "Ảnh bìa", Type: models.SectionTypeImage},
		})
		assert.NoError(t, err)
		assert.Equal(t, 5242880, sections[0].Config["maxSize"])
	})

	t.Run("Config client ghi de config mac dinh", func(t *testing.T) {
		sections, err := BuildSections([]dto.SectionDefinitionInput{
			{
				Title:  "Ảnh bìa",
				Type:   models.SectionTypeImage,
				Config: map[string]interface{}{"maxSize": 1048576},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1048576, sections[0].Config["maxSize"])
		// Key không ghi đè vẫn giữ giá trị mặc định
		assert.NotNil(t, sections[0].Config["allowedTypes"])
	})

	t.Run("Loai section khong ho tro tra loi 400", func(t *testing.T) {
		_, err := BuildSections([]dto.SectionDefinitionInput{
			{Title: "Audio", Type: "audio"},
		})
		assert.Error(t, err)
		appErr, ok := err.(*common.Error)
		assert.True(t, ok)
		assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, common.ErrCodeBusinessTemplate.Code, appErr.Code.Code)
	})

	t.Run("Danh sach rong hop le", func(t *testing.T) {
		sections, err := BuildSections(nil)
		assert.NoError(t, err)
		assert.NotNil(t, sections)
		assert.Len(t, sections, 0)
	})
}

func TestSectionsStructurallyEqual(t *testing.T) {
	base := []models.SectionDefinition{
		{ID: "a", Type: models.SectionTypeText, Required: true, Title: "A"},
		{ID: "b", Type: models.SectionTypeImage, Required: false, Title: "B"},
	}

	t.Run("Giong het nhau", func(t *testing.T) {
		other := []models.SectionDefinition{
			{ID: "a", Type: models.SectionTypeText, Required: true, Title: "A"},
			{ID: "b", Type: models.SectionTypeImage, Required: false, Title: "B"},
		}
		assert.True(t, SectionsStructurallyEqual(base, other))
	})

	t.Run("Doi title khong tinh la doi cau truc", func(t *testing.T) {
		other := []models.SectionDefinition{
			{ID: "a", Type: models.SectionTypeText, Required: true, Title: "Tên mới"},
			{ID: "b", Type: models.SectionTypeImage, Required: false, Title: "B"},
		}
		assert.True(t, SectionsStructurallyEqual(base, other))
	})

	t.Run("Khac so luong", func(t *testing.T) {
		assert.False(t, SectionsStructurallyEqual(base, base[:1]))
	})

	t.Run("Doi loai section", func(t *testing.T) {
		other := []models.SectionDefinition{
			{ID: "a", Type: models.SectionTypeLink, Required: true},
			{ID: "b", Type: models.SectionTypeImage, Required: false},
		}
		assert.False(t, SectionsStructurallyEqual(base, other))
	})

	t.Run("Doi co bat buoc", func(t *testing.T) {
		other := []models.SectionDefinition{
			{ID: "a", Type: models.SectionTypeText, Required: false},
			{ID: "b", Type: models.SectionTypeImage, Required: false},
		}
		assert.False(t, SectionsStructurallyEqual(base, other))
	})

	t.Run("Doi thu tu", func(t *testing.T) {
		other := []models.SectionDefinition{
			{ID: "b", Type: models.SectionTypeImage, Required: false},
			{ID: "a", Type: models.SectionTypeText, Required: true},
		}
		assert.False(t, SectionsStructurallyEqual(base, other))
	})
}
