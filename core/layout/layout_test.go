package layout

import (
	"testing"

	models "page_builder/core/api/models/mongodb"

	"github.com/stretchr/testify/assert"
)

func TestResolveLayoutKey(t *testing.T) {
	t.Run("Uu tien layoutKey tren mau", func(t *testing.T) {
		tpl := &models.Template{Name: "Landing Page", LayoutKey: LayoutPayment}
		assert.Equal(t, LayoutPayment, ResolveLayoutKey(tpl))
	})

	t.Run("Mau cu tra theo ten hien thi", func(t *testing.T) {
		assert.Equal(t, LayoutLanding, ResolveLayoutKey(&models.Template{Name: "Landing Page"}))
		assert.Equal(t, LayoutThankyou, ResolveLayoutKey(&models.Template{Name: "  Thank You  "}))
		assert.Equal(t, LayoutWebinar, ResolveLayoutKey(&models.Template{Name: "WEBINAR"}))
	})

	t.Run("Ca hai cach viet ten trang cam on deu nhan ra", func(t *testing.T) {
		assert.Equal(t, LayoutThankyou, ResolveLayoutKey(&models.Template{Name: "Thankyou Page"}))
		assert.Equal(t, LayoutThankyou, ResolveLayoutKey(&models.Template{Name: "thankyou page"}))
	})

	t.Run("Khong khop thi dung minimal", func(t *testing.T) {
		assert.Equal(t, LayoutMinimal, ResolveLayoutKey(&models.Template{Name: "Trang cua toi"}))
		assert.Equal(t, LayoutMinimal, ResolveLayoutKey(&models.Template{LayoutKey: "fancy"}))
		assert.Equal(t, LayoutMinimal, ResolveLayoutKey(nil))
	})
}

func TestIsValidLayoutKey(t *testing.T) {
	for _, key := range ValidLayoutKeys() {
		assert.True(t, IsValidLayoutKey(key), "Layout key %s phải hợp lệ", key)
	}
	assert.False(t, IsValidLayoutKey(""))
	assert.False(t, IsValidLayoutKey("fancy"))
}

func TestAssembleRenderPlan_SlotTuTag(t *testing.T) {
	tpl := &models.Template{
		LayoutKey: LayoutLanding,
		Sections: []models.SectionDefinition{
			{ID: "s1", Title: "Ảnh đầu trang", Type: models.SectionTypeImage, Slot: models.SlotHero},
			{ID: "s2", Title: "Giới thiệu", Type: models.SectionTypeText, Slot: models.SlotBody},
		},
	}
	doc := &models.ContentDocument{
		Heading:         "Tiêu đề",
		Subheading:      "Phụ đề",
		BackgroundColor: "#fafafa",
		Sections: map[string]models.SectionValue{
			"s1": {Type: models.SectionTypeImage, Value: "https://cdn.example.com/a.png"},
			"s2": {Type: models.SectionTypeText, Value: "Xin chào"},
		},
	}

	plan := AssembleRenderPlan(tpl, doc, false)

	assert.Equal(t, LayoutLanding, plan.LayoutKey)
	assert.Equal(t, "Tiêu đề", plan.Heading)
	assert.Equal(t, "#fafafa", plan.BackgroundColor)
	assert.Len(t, plan.Sections, 2)
	assert.Equal(t, "https://cdn.example.com/a.png", plan.Sections[0].Value)

	assert.Len(t, plan.Slots[models.SlotHero], 1)
	assert.Len(t, plan.Slots[models.SlotBody], 1)
	assert.Equal(t, "s2", plan.Slots[models.SlotBody][0].SectionID)
}

func TestAssembleRenderPlan_SlotFallbackTheoViTri(t *testing.T) {
	// Mẫu cũ không gắn slot: text đầu là headline, text cuối là nhãn nút,
	// text giữa là body; media đầu là hero, media sau là media; link là buttonLink.
	tpl := &models.Template{
		LayoutKey: LayoutLanding,
		Sections: []models.SectionDefinition{
			{ID: "t1", Type: models.SectionTypeText},
			{ID: "m1", Type: models.SectionTypeImage},
			{ID: "t2", Type: models.SectionTypeText},
			{ID: "m2", Type: models.SectionTypeVideo},
			{ID: "t3", Type: models.SectionTypeText},
			{ID: "l1", Type: models.SectionTypeLink},
		},
	}
	doc := &models.ContentDocument{Sections: map[string]models.SectionValue{}}

	plan := AssembleRenderPlan(tpl, doc, false)

	bySection := map[string]string{}
	for _, sec := range plan.Sections {
		bySection[sec.SectionID] = sec.Slot
	}

	assert.Equal(t, models.SlotHeadline, bySection["t1"])
	assert.Equal(t, models.SlotBody, bySection["t2"])
	assert.Equal(t, models.SlotButton, bySection["t3"])
	assert.Equal(t, models.SlotHero, bySection["m1"])
	assert.Equal(t, models.SlotMedia, bySection["m2"])
	assert.Equal(t, models.SlotButtonLink, bySection["l1"])
}

func TestAssembleRenderPlan_MotTextDuyNhatLaHeadline(t *testing.T) {
	tpl := &models.Template{
		Sections: []models.SectionDefinition{
			{ID: "t1", Type: models.SectionTypeText},
		},
	}
	plan := AssembleRenderPlan(tpl, &models.ContentDocument{}, false)
	// Một text duy nhất vừa là đầu vừa là cuối: ưu tiên headline
	assert.Equal(t, models.SlotHeadline, plan.Sections[0].Slot)
}

func TestAssembleRenderPlan_ShowPopup(t *testing.T) {
	tpl := &models.Template{Sections: []models.SectionDefinition{}}

	t.Run("Bat khi askUserDetails va co bo cau hoi", func(t *testing.T) {
		doc := &models.ContentDocument{AskUserDetails: true}
		assert.True(t, AssembleRenderPlan(tpl, doc, true).ShowPopup)
	})

	t.Run("Tat khi khong co bo cau hoi", func(t *testing.T) {
		doc := &models.ContentDocument{AskUserDetails: true}
		assert.False(t, AssembleRenderPlan(tpl, doc, false).ShowPopup)
	})

	t.Run("Tat khi askUserDetails = false", func(t *testing.T) {
		doc := &models.ContentDocument{AskUserDetails: false}
		assert.False(t, AssembleRenderPlan(tpl, doc, true).ShowPopup)
	})
}
