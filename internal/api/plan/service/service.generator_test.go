// Package plansvc - Test ép miền giá trị đầu ra của generator.
package plansvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planmodels "campaign_planner/internal/api/plan/models"
)

func TestSanitizeStructure_CoercesUnknownValues(t *testing.T) {
	structure := &GeneratedStructure{
		Phases: []GeneratedPhase{{
			Name:       "Week 1",
			WeekNumber: 1,
			ContentItems: []GeneratedItem{
				{Title: "a", Format: "video", CtaType: "aggressive", RecommendedDayOffset: 9},
				{Title: "b", Format: planmodels.ItemFormatReel, CtaType: planmodels.CtaTypeHard, RecommendedDayOffset: 3},
				{Title: "c", Format: planmodels.ItemFormatStory, CtaType: planmodels.CtaTypeSoft, RecommendedDayOffset: -2, ProductID: "  prod-1  "},
			},
		}},
	}

	coercions := sanitizeStructure(structure)
	assert.Equal(t, 4, coercions, "format lạ, ctaType lạ, offset 9 và offset -2 đều phải bị sửa")

	items := structure.Phases[0].ContentItems
	require.Len(t, items, 3)

	assert.Equal(t, planmodels.ItemFormatPost, items[0].Format, "format lạ phải về post")
	assert.Equal(t, planmodels.CtaTypeSoft, items[0].CtaType, "ctaType lạ phải về soft")
	assert.Equal(t, 6, items[0].RecommendedDayOffset, "offset 9 phải kẹp về 6")

	assert.Equal(t, 0, items[2].RecommendedDayOffset, "offset âm phải kẹp về 0")
	assert.Equal(t, "prod-1", items[2].ProductID, "productId phải được trim")

	// Item hợp lệ giữ nguyên
	assert.Equal(t, planmodels.ItemFormatReel, items[1].Format)
	assert.Equal(t, planmodels.CtaTypeHard, items[1].CtaType)
	assert.Equal(t, 3, items[1].RecommendedDayOffset)
}

func TestSanitizeStructure_ValidInputUntouched(t *testing.T) {
	structure := &GeneratedStructure{
		Phases: []GeneratedPhase{{
			WeekNumber: 1,
			ContentItems: []GeneratedItem{
				{Title: "ok", Format: planmodels.ItemFormatCarousel, CtaType: planmodels.CtaTypeEducational, RecommendedDayOffset: 0},
			},
		}},
	}
	assert.Equal(t, 0, sanitizeStructure(structure), "đầu vào hợp lệ không được sửa")
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"phases":[]}`, `{"phases":[]}`},
		{"```json\n{\"phases\":[]}\n```", `{"phases":[]}`},
		{"```\n{\"phases\":[]}\n```", `{"phases":[]}`},
		{"  \n{\"phases\":[]}\n  ", `{"phases":[]}`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, stripCodeFence(c.in), "input: %q", c.in)
	}
}
