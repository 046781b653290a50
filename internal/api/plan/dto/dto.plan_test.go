package plandto

import (
	"testing"

	planmodels "campaign_planner/internal/api/plan/models"
	"campaign_planner/internal/global"
)

func validCreateInput() PlanCreateInput {
	return PlanCreateInput{
		UserID:        "64f000000000000000000001",
		BrandID:       "64f000000000000000000002",
		Name:          "Chiến dịch mùa hè",
		Objective:     "sales_conversion",
		StartDate:     "2026-03-01",
		DurationWeeks: 4,
		Platforms:     []string{"tiktok", "instagram"},
	}
}

func TestPlanCreateInput_ContentMixRange(t *testing.T) {
	global.InitValidator()

	input := validCreateInput()
	input.ContentMixPreference = planmodels.ContentMixPreference{
		Educational: 150, Promotional: -20, Storytelling: 30, Authority: 20,
	}
	if err := global.Validate.Struct(&input); err == nil {
		t.Error("contentMixPreference ngoài khoảng 0-100 phải bị từ chối")
	}

	input.ContentMixPreference = planmodels.ContentMixPreference{
		Educational: 40, Promotional: 20, Storytelling: 25, Authority: 15,
	}
	if err := global.Validate.Struct(&input); err != nil {
		t.Errorf("contentMixPreference hợp lệ không được báo lỗi: %v", err)
	}
}

func TestPlanUpdateInput_ContentMixRange(t *testing.T) {
	global.InitValidator()

	mix := planmodels.ContentMixPreference{Educational: 101}
	input := PlanUpdateInput{ContentMixPreference: &mix}
	if err := global.Validate.Struct(&input); err == nil {
		t.Error("giá trị mix lớn hơn 100 phải bị từ chối")
	}

	input.ContentMixPreference = nil
	if err := global.Validate.Struct(&input); err != nil {
		t.Errorf("update không kèm mix không được báo lỗi: %v", err)
	}
}
