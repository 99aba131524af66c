package services

import (
	"testing"

	"page_builder/core/api/dto"
	models "page_builder/core/api/models/mongodb"
	"page_builder/core/common"

	"github.com/stretchr/testify/assert"
)

var sampleOptions = []models.QuestionOption{
	{Text: "Hà Nội", IsCorrect: true},
	{Text: "Đà Nẵng"},
	{Text: "Cần Thơ"},
}

func TestNormalizeAnswer(t *testing.T) {
	t.Run("Noi dung day du giu nguyen", func(t *testing.T) {
		assert.Equal(t, "Đà Nẵng", NormalizeAnswer("Đà Nẵng", sampleOptions))
	})

	t.Run("Ky hieu tat tro theo vi tri", func(t *testing.T) {
		assert.Equal(t, "Hà Nội", NormalizeAnswer("a", sampleOptions))
		assert.Equal(t, "Đà Nẵng", NormalizeAnswer("b", sampleOptions))
		assert.Equal(t, "Cần Thơ", NormalizeAnswer("C", sampleOptions), "Ký hiệu viết hoa vẫn resolve được")
	})

	t.Run("Ky hieu ngoai so lua chon giu nguyen", func(t *testing.T) {
		assert.Equal(t, "f", NormalizeAnswer("f", sampleOptions))
	})

	t.Run("Gia tri khong khop giu nguyen sau trim", func(t *testing.T) {
		assert.Equal(t, "Hải Phòng", NormalizeAnswer("  Hải Phòng  ", sampleOptions))
	})

	t.Run("Gia tri rong", func(t *testing.T) {
		assert.Equal(t, "", NormalizeAnswer("   ", sampleOptions))
	})

	t.Run("Lua chon trung ky hieu tat thi uu tien noi dung", func(t *testing.T) {
		opts := []models.QuestionOption{{Text: "a"}, {Text: "b"}}
		assert.Equal(t, "a", NormalizeAnswer("a", opts))
	})
}

func TestNormalizeAnswers(t *testing.T) {
	questions := []models.Question{
		{QuestionText: "Thủ đô?", Options: sampleOptions, Required: true},
		{QuestionText: "Thành phố biển?", Options: sampleOptions},
	}

	t.Run("Chuan hoa theo vi tri", func(t *testing.T) {
		answers, err := NormalizeAnswers(questions, []dto.AnswerInput{
			{SelectedOption: "a"},
			{SelectedOption: "Đà Nẵng"},
		})
		assert.NoError(t, err)
		assert.Len(t, answers, 2)
		assert.Equal(t, "Hà Nội", answers[0].SelectedOption)
		assert.Equal(t, "Đà Nẵng", answers[1].SelectedOption)
	})

	t.Run("Cau tra loi thua bi bo qua", func(t *testing.T) {
		answers, err := NormalizeAnswers(questions, []dto.AnswerInput{
			{SelectedOption: "a"},
			{SelectedOption: "b"},
			{SelectedOption: "c"},
		})
		assert.NoError(t, err)
		assert.Len(t, answers, 2)
	})

	t.Run("Cau hoi tuy chon khong tra loi", func(t *testing.T) {
		answers, err := NormalizeAnswers(questions, []dto.AnswerInput{
			{SelectedOption: "a"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "", answers[1].SelectedOption)
	})

	t.Run("Cau hoi bat buoc khong tra loi", func(t *testing.T) {
		_, err := NormalizeAnswers(questions, []dto.AnswerInput{
			{SelectedOption: ""},
			{SelectedOption: "b"},
		})
		assert.Error(t, err)
		appErr, ok := err.(*common.Error)
		assert.True(t, ok)
		assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
		assert.Contains(t, appErr.Message, "Thủ đô?")
	})
}

func TestEnrichAnswers(t *testing.T) {
	questions := []models.Question{
		{QuestionText: "Thủ đô?", Options: sampleOptions},
		{QuestionText: "Thành phố biển?", Options: sampleOptions},
	}

	t.Run("Gan noi dung cau hoi theo vi tri", func(t *testing.T) {
		enriched := EnrichAnswers(questions, []models.AnswerItem{
			{SelectedOption: "Hà Nội"},
			{SelectedOption: "Đà Nẵng"},
		})
		assert.Len(t, enriched, 2)
		assert.Equal(t, "Thủ đô?", enriched[0].QuestionText)
		assert.Equal(t, "Đà Nẵng", enriched[1].SelectedOption)
	})

	t.Run("Resolve ky hieu tat trong bai lam cu", func(t *testing.T) {
		enriched := EnrichAnswers(questions, []models.AnswerItem{
			{SelectedOption: "b"},
		})
		assert.Equal(t, "Đà Nẵng", enriched[0].SelectedOption)
	})

	t.Run("Bai lam dai hon danh sach cau hoi", func(t *testing.T) {
		enriched := EnrichAnswers(questions[:1], []models.AnswerItem{
			{SelectedOption: "a"},
			{SelectedOption: "dư thừa"},
		})
		assert.Len(t, enriched, 2)
		assert.Equal(t, "", enriched[1].QuestionText, "Câu trả lời không có câu hỏi tương ứng để trống questionText")
		assert.Equal(t, "dư thừa", enriched[1].SelectedOption)
	})
}
